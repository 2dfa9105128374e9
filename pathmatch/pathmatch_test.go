package pathmatch

import (
	"reflect"
	"strings"
	"testing"
)

func TestCompileAndMatch(t *testing.T) {
	tests := []struct {
		name     string
		template string
		path     string
		want     Params
		ok       bool
	}{
		{"exact", "/about", "/about", Params{}, true},
		{"exact miss", "/about", "/about/", nil, false},
		{"root", "/", "/", Params{}, true},
		{"single wildcard", "/a/*", "/a/b", Params{"b"}, true},
		{"wildcard needs a char", "/a/*", "/a/", nil, false},
		{"wildcard stops at slash", "/a/*", "/a/b/c", nil, false},
		{"two wildcards", "/blog/*/*", "/blog/2024/hello", Params{"2024", "hello"}, true},
		{"wildcard mid segment", "/file-*.html", "/file-12.html", Params{"12"}, true},
		{"anchored start", "/a/*", "/x/a/b", nil, false},
		{"anchored end", "/*/edit", "/p/edit/more", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Compile(tt.template)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.template, err)
			}
			got, ok := m.Match(tt.path)
			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCaptureCountMatchesWildcards(t *testing.T) {
	templates := map[string]string{
		"/*":         "/x",
		"/*/*":       "/abc/def",
		"/a/*/b/*/c": "/a/1/b/22/c",
		"/*/*/*/*":   "/w/x/y/z",
		"/static":    "/static",
		"/u/*/posts": "/u/jane/posts",
	}

	for template, path := range templates {
		t.Run(template, func(t *testing.T) {
			m := MustCompile(template)
			params, ok := m.Match(path)
			if !ok {
				t.Fatalf("expected %q to match %q", path, template)
			}
			k := strings.Count(template, "*")
			if params.Len() != k || m.Wildcards() != k {
				t.Fatalf("got %d captures (Wildcards=%d), want %d", params.Len(), m.Wildcards(), k)
			}
			for i, p := range params {
				if p == "" || strings.Contains(p, "/") {
					t.Errorf("capture %d = %q is not a non-slash run", i, p)
				}
			}
		})
	}
}

func TestInvalidTemplate(t *testing.T) {
	if _, err := Compile("/a/(*"); err == nil {
		t.Error("expected error for unbalanced group")
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		path   string
		want   string
		ok     bool
	}{
		{"/static", "/static/css/site.css", "css/site.css", true},
		{"/static", "/static", "", false},
		{"/static", "/static/", "", false},
		{"/static", "/staticx/a.css", "", false},
		{"/", "/robots.txt", "robots.txt", true},
		{"/", "/", "", false},
		{"/assets", "/other/assets/a.js", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.prefix+" "+tt.path, func(t *testing.T) {
			m, err := Prefix(tt.prefix)
			if err != nil {
				t.Fatalf("Prefix(%q) failed: %v", tt.prefix, err)
			}
			got, ok := m.Match(tt.path)
			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if ok && got.Get(0) != tt.want {
				t.Errorf("remainder = %q, want %q", got.Get(0), tt.want)
			}
		})
	}
}

func TestParams(t *testing.T) {
	p := Params{"2024", "hello"}

	if p.Get(1) != "hello" || p.Get(2) != "" || p.Get(-1) != "" {
		t.Errorf("Get returned unexpected values")
	}

	want := map[string]string{"0": "2024", "1": "hello"}
	if got := p.Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}

	if got := (Params{}).Map(); len(got) != 0 {
		t.Errorf("empty Params should map to empty map, got %v", got)
	}
}
