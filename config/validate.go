package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ksyq12/sitemux/pathmatch"
)

// Severity grades a Problem.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Problem is one finding of Validate.
type Problem struct {
	Host     string   `json:"host,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (p Problem) String() string {
	if p.Host == "" {
		return p.Message
	}
	return p.Host + ": " + p.Message
}

// Validate inspects a document for mistakes that dispatch would silently
// tolerate. Errors mean some configured content can never be served;
// warnings flag things that may be intended.
func Validate(cfg *Config) []Problem {
	var problems []Problem
	add := func(host string, sev Severity, format string, args ...interface{}) {
		problems = append(problems, Problem{Host: host, Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	seen := make(map[string]bool)
	for i := range cfg.Websites {
		w := &cfg.Websites[i]
		host := w.ID

		if host == "" {
			add("", SeverityError, "website #%d has no id", i)
			continue
		}
		if strings.HasPrefix(host, "www.") {
			add(host, SeverityError, "id must not start with \"www.\"; requests are matched on the name without it")
		}
		if seen[host] {
			add(host, SeverityWarning, "duplicate website id, only the first entry is used")
		}
		seen[host] = true

		if w.Favicon != "" && !fileExists(cfg.Resolve(w.Favicon)) {
			add(host, SeverityWarning, "favicon %s does not exist", w.Favicon)
		}

		for j, rule := range w.Static {
			if !rule.Valid {
				add(host, SeverityError, "static rule #%d is not a [directory, prefix] pair", j)
				continue
			}
			if _, err := pathmatch.Prefix(rule.URLPrefix); err != nil {
				add(host, SeverityError, "static rule #%d: %v", j, err)
			}
			if info, err := os.Stat(cfg.Resolve(rule.Directory)); err != nil || !info.IsDir() {
				add(host, SeverityWarning, "static directory %s does not exist", rule.Directory)
			}
		}

		pageIDs := make(map[string]bool)
		for _, p := range w.Pages {
			if pageIDs[p.ID] {
				add(host, SeverityWarning, "page id %q is declared more than once", p.ID)
			}
			pageIDs[p.ID] = true

			if _, err := pathmatch.Compile(p.Path); err != nil {
				add(host, SeverityError, "page %q: %v", p.ID, err)
			}
			if p.File != "" && !fileExists(cfg.Resolve(p.File)) {
				add(host, SeverityWarning, "page %q: file %s does not exist", p.ID, p.File)
			}
		}

		for _, e := range w.ErrorPages {
			if e.Code < 100 || e.Code > 599 {
				add(host, SeverityError, "error page for %d: not an HTTP status", e.Code)
			}
			if !pageIDs[e.Page] {
				add(host, SeverityError, "error page for %d references unknown page %q", e.Code, e.Page)
			}
		}
	}
	return problems
}

// HasErrors reports whether any problem has error severity.
func HasErrors(problems []Problem) bool {
	for _, p := range problems {
		if p.Severity == SeverityError {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
