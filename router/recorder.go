package router

import (
	"net/http"
	"strconv"
	"strings"
)

// Directive is one call made on a Recorder.
type Directive struct {
	Kind  string `json:"kind"` // "status", "header", "redirect", "file" or "send"
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
}

func (d Directive) String() string {
	if d.Key != "" {
		return d.Kind + " " + d.Key + ": " + d.Value
	}
	return d.Kind + " " + d.Value
}

// Recorder is a Response that records directives instead of writing them.
// It backs dry runs and tests.
type Recorder struct {
	Directives  []Directive
	StatusCode  int
	Header      http.Header
	RedirectURL string
	File        string
	Body        []byte
	sent        bool
}

// NewRecorder returns a Recorder with status 200.
func NewRecorder() *Recorder {
	return &Recorder{StatusCode: http.StatusOK, Header: make(http.Header)}
}

func (r *Recorder) record(kind, key, value string) {
	r.Directives = append(r.Directives, Directive{Kind: kind, Key: key, Value: value})
}

func (r *Recorder) Status(code int) {
	r.StatusCode = code
	r.record("status", "", strconv.Itoa(code))
}

func (r *Recorder) SetHeader(key, value string) {
	r.Header.Set(key, value)
	r.record("header", key, value)
}

func (r *Recorder) Redirect(url string) {
	r.RedirectURL = url
	r.sent = true
	r.record("redirect", "", url)
}

func (r *Recorder) SendFile(path string) {
	r.File = path
	r.sent = true
	r.record("file", "", path)
}

func (r *Recorder) Send(body []byte) {
	r.Body = append(r.Body[:0], body...)
	r.sent = true
	r.record("send", "", strings.TrimSpace(string(body)))
}

// Sent reports whether a terminal directive was recorded.
func (r *Recorder) Sent() bool {
	return r.sent
}

// Kinds returns the directive kinds in order.
func (r *Recorder) Kinds() []string {
	kinds := make([]string, len(r.Directives))
	for i, d := range r.Directives {
		kinds[i] = d.Kind
	}
	return kinds
}
