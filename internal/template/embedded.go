package template

import "embed"

//go:embed pages/*.tmpl
var pageTemplates embed.FS
