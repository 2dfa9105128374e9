package hostname

import (
	"strings"
	"testing"
)

func TestIsWWW(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"www.example.com", true},
		{"example.com", false},
		{"WWW.example.com", false},
		{"wwwexample.com", false},
		{"www.", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			if got := IsWWW(tt.host); got != tt.want {
				t.Errorf("IsWWW(%q) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"www.example.com", "example.com"},
		{"example.com", "example.com"},
		{"api.example.com", "api.example.com"},
		{"WWW.example.com", "WWW.example.com"},
		{"www.www.example.com", "example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			if got := Canonical(tt.host); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.host, got, tt.want)
			}
		})
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	hosts := []string{
		"example.com",
		"www.example.com",
		"www.www.example.com",
		"www.www.www.a",
		"www.",
		"localhost",
		"a.www.b",
	}

	for _, h := range hosts {
		t.Run(h, func(t *testing.T) {
			once := Canonical(h)
			if twice := Canonical(once); twice != once {
				t.Errorf("Canonical not idempotent for %q: %q then %q", h, once, twice)
			}
			if strings.HasPrefix(once, "www.") {
				t.Errorf("Canonical(%q) = %q still starts with www.", h, once)
			}
		})
	}
}

func TestWithWWW(t *testing.T) {
	if got := WithWWW("example.com"); got != "www.example.com" {
		t.Errorf("WithWWW(example.com) = %q", got)
	}
	if got := WithWWW("www.example.com"); got != "www.example.com" {
		t.Errorf("WithWWW(www.example.com) = %q", got)
	}
}

func TestStripPort(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com:8080", "example.com"},
		{"example.com", "example.com"},
		{"127.0.0.1:80", "127.0.0.1"},
		{"[::1]:8080", "[::1]"},
		{"[::1]", "[::1]"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := StripPort(tt.in); got != tt.want {
				t.Errorf("StripPort(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
