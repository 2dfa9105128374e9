// Package pathmatch compiles wildcard page templates into path matchers.
//
// A template is a URL path in which every "*" matches exactly one path
// segment, that is one or more characters other than "/". Each wildcard
// becomes a positional capture:
//
//	m, _ := pathmatch.Compile("/blog/*/*")
//	params, ok := m.Match("/blog/2024/hello")
//	// ok == true, params.Get(0) == "2024", params.Get(1) == "hello"
//
// Apart from "*" the template is handed to the regexp engine unchanged, so
// templates are expected to be literal paths.
package pathmatch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const segment = `([^/]+)`

// Params holds the captures of a match in template order.
type Params []string

// Get returns capture i, or "" when i is out of range.
func (p Params) Get(i int) string {
	if i < 0 || i >= len(p) {
		return ""
	}
	return p[i]
}

// Len returns the number of captures.
func (p Params) Len() int {
	return len(p)
}

// Map exposes the captures keyed by their zero-based index ("0", "1", ...).
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p))
	for i, v := range p {
		m[strconv.Itoa(i)] = v
	}
	return m
}

// Matcher tests request paths against one compiled template.
type Matcher struct {
	template string
	exact    bool
	re       *regexp.Regexp
}

// Compile builds a Matcher for template. A template without wildcards
// matches by plain string equality.
func Compile(template string) (*Matcher, error) {
	if !strings.Contains(template, "*") {
		return &Matcher{template: template, exact: true}, nil
	}
	expr := "^" + strings.ReplaceAll(template, "*", segment) + "$"
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile template %q: %w", template, err)
	}
	return &Matcher{template: template, re: re}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(template string) *Matcher {
	m, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return m
}

// Prefix builds the matcher used by static rules: the path must start with
// urlPrefix followed by "/" (no slash is added when urlPrefix is "/"), and
// everything after that is captured as the single parameter.
func Prefix(urlPrefix string) (*Matcher, error) {
	sep := "/"
	if urlPrefix == "/" {
		sep = ""
	}
	re, err := regexp.Compile("^" + urlPrefix + sep + "(.+)")
	if err != nil {
		return nil, fmt.Errorf("compile static prefix %q: %w", urlPrefix, err)
	}
	return &Matcher{template: urlPrefix, re: re}, nil
}

// Wildcards returns the number of captures a successful match yields.
func (m *Matcher) Wildcards() int {
	if m.exact {
		return 0
	}
	return m.re.NumSubexp()
}

// Match tests path, which must not include a query string.
func (m *Matcher) Match(path string) (Params, bool) {
	if m.exact {
		if path != m.template {
			return nil, false
		}
		return Params{}, true
	}
	sub := m.re.FindStringSubmatch(path)
	if sub == nil {
		return nil, false
	}
	return Params(sub[1:]), true
}
