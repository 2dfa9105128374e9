package template

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"
)

// Names of the embedded bodies.
const (
	ErrorPage   = "error.html.tmpl"
	Placeholder = "placeholder.html.tmpl"
)

// ErrorData is the input of the error page.
type ErrorData struct {
	Code int
	Path string
}

var (
	parseOnce sync.Once
	parsed    *template.Template
	parseErr  error
)

func templates() (*template.Template, error) {
	parseOnce.Do(func() {
		parsed, parseErr = template.ParseFS(pageTemplates, "pages/*.tmpl")
	})
	return parsed, parseErr
}

// Render executes the embedded template name with data.
func Render(name string, data interface{}) (string, error) {
	tmpl, err := templates()
	if err != nil {
		return "", fmt.Errorf("failed to parse templates: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderError returns the built-in body for status code on path. The path
// is HTML-escaped.
func RenderError(code int, path string) string {
	body, err := Render(ErrorPage, ErrorData{Code: code, Path: path})
	if err != nil {
		return fmt.Sprintf("<title>%d</title><h1>%d</h1>", code, code)
	}
	return body
}

// RenderPlaceholder returns the body sent for a page nothing can render.
func RenderPlaceholder() string {
	body, err := Render(Placeholder, nil)
	if err != nil {
		return "<h1>Oops.</h1>"
	}
	return body
}

// Available returns the names of the embedded templates.
func Available() []string {
	tmpl, err := templates()
	if err != nil {
		return nil
	}
	var names []string
	for _, t := range tmpl.Templates() {
		names = append(names, t.Name())
	}
	return names
}
