package transport

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ksyq12/sitemux/internal/logger"
)

// response executes router directives against an http.ResponseWriter.
// The status is held until something is written.
type response struct {
	w       http.ResponseWriter
	r       *http.Request
	status  int
	written bool
}

func newResponse(w http.ResponseWriter, r *http.Request) *response {
	return &response{w: w, r: r, status: http.StatusOK}
}

func (res *response) Status(code int) {
	res.status = code
}

func (res *response) SetHeader(key, value string) {
	res.w.Header().Set(key, value)
}

func (res *response) Redirect(url string) {
	if res.written {
		return
	}
	res.written = true
	http.Redirect(res.w, res.r, url, http.StatusFound)
}

// SendFile serves path. Plain 200 responses go through http.ServeContent
// so ranges and conditional requests work; other statuses are written
// as-is.
func (res *response) SendFile(path string) {
	if res.written {
		return
	}
	res.written = true

	f, err := os.Open(path)
	if err != nil {
		logger.Warn("send file: %v", err)
		http.Error(res.w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		logger.Warn("send file: %s is not a regular file", path)
		http.Error(res.w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	if res.status == http.StatusOK {
		http.ServeContent(res.w, res.r, info.Name(), info.ModTime(), f)
		return
	}

	if res.w.Header().Get("Content-Type") == "" {
		if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
			res.w.Header().Set("Content-Type", ct)
		}
	}
	res.w.WriteHeader(res.status)
	if res.r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(res.w, f); err != nil {
		logger.Debug("send file %s: %v", path, err)
	}
}

func (res *response) Send(body []byte) {
	if res.written {
		return
	}
	res.written = true

	if res.w.Header().Get("Content-Type") == "" {
		res.w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	res.w.WriteHeader(res.status)
	if res.r.Method == http.MethodHead {
		return
	}
	if _, err := res.w.Write(body); err != nil {
		logger.Debug("send: %v", err)
	}
}

// finish writes the pending status when no directive produced a body.
func (res *response) finish() {
	if res.written {
		return
	}
	res.written = true
	res.w.WriteHeader(res.status)
}
