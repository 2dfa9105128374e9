// Package hostname normalizes request hostnames for website lookup.
//
// The canonical form of a host never carries a leading "www." label. It is
// the key for configuration lookups and for every handler registry, so
// "www.example.com" and "example.com" always address the same website.
package hostname

import "strings"

const wwwPrefix = "www."

// IsWWW reports whether host starts with the literal "www." label.
// The comparison is case-sensitive.
func IsWWW(host string) bool {
	return strings.HasPrefix(host, wwwPrefix)
}

// Canonical removes leading "www." labels from host. Repeated labels are
// all removed so the result never starts with "www.".
func Canonical(host string) string {
	for IsWWW(host) {
		host = host[len(wwwPrefix):]
	}
	return host
}

// WithWWW returns host with a leading "www." label.
func WithWWW(host string) string {
	if IsWWW(host) {
		return host
	}
	return wwwPrefix + host
}

// StripPort removes a trailing ":port" from an HTTP Host value.
// Bracketed IPv6 literals keep their brackets.
func StripPort(hostport string) string {
	idx := strings.LastIndex(hostport, ":")
	if idx == -1 {
		return hostport
	}
	// "[::1]" has colons but no port
	if strings.Contains(hostport[idx:], "]") {
		return hostport
	}
	return hostport[:idx]
}
