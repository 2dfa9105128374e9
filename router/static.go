package router

import (
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ksyq12/sitemux/internal/errors"
)

// static runs the static rules of the website. The first rule whose
// prefix matches decides the branch: when its file is missing dispatch
// moves on to the pages without trying later rules.
func (d *dispatch) static() bool {
	for i, rule := range d.site.website.Static {
		if !rule.Valid {
			continue
		}
		m, err := d.router.prefix(rule.URLPrefix)
		if err != nil {
			d.log.Warn("static rule #%d skipped: %v", i, err)
			continue
		}
		params, ok := m.Match(d.req.Path)
		if !ok {
			continue
		}

		file, inside := staticFile(d.site.resolve(rule.Directory), params.Get(0))
		if !inside || !isFile(file) {
			d.log.Debug("%v", errors.StaticMissing(d.host, file))
			return false
		}
		d.serveStatic(file)
		return true
	}
	return false
}

func (d *dispatch) serveStatic(file string) {
	d.applyCORS()

	filename := filepath.Base(file)
	hook := d.router.LookupStatic(d.host, filename)
	if hook == nil {
		d.res.SendFile(file)
		d.outcome = "static"
		return
	}

	content, err := d.router.ReadFile(file)
	if err != nil {
		d.log.Warn("static hook skipped: %v", err)
		d.res.SendFile(file)
		d.outcome = "static"
		return
	}

	d.res.SetHeader("Content-Type", contentType(filename))
	data := StaticData{Website: d.site.website, Filename: filename, Content: content}
	if out, ok := hook(data, d.req, d.res); ok {
		content = out
	}
	d.res.Send([]byte(content))
	d.outcome = "static-hook"
}

// applyCORS sets Access-Control-Allow-Origin for static responses.
func (d *dispatch) applyCORS() {
	w := &d.site.website
	switch {
	case w.AllowsAnyOrigin():
		d.res.SetHeader("Access-Control-Allow-Origin", "*")
	case d.req.Origin != "" && w.AllowsOrigin(d.req.Origin):
		d.res.SetHeader("Access-Control-Allow-Origin", d.req.Origin)
	}
}

// staticFile unescapes rest and joins it onto dir. inside is false when
// rest is not valid escaping or the result would escape dir.
func staticFile(dir, rest string) (file string, inside bool) {
	name, err := url.PathUnescape(rest)
	if err != nil {
		return filepath.Join(dir, filepath.FromSlash(rest)), false
	}
	file = filepath.Join(dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(dir, file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return file, false
	}
	return file, true
}

func contentType(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
