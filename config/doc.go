// Package config defines the site document and loads it.
//
// The document is JSON stored under the well-known name server.json (YAML is
// accepted when the file ends in .yaml or .yml). It lists the websites
// served by the process, each keyed by its hostname without "www.":
//
//	{
//	  "enabled": true,
//	  "websites": [
//	    {
//	      "id": "example.com",
//	      "www": false,
//	      "favicon": "example/favicon.ico",
//	      "allowedOrigins": ["https://app.example.com"],
//	      "static": [["example/public", "/assets"]],
//	      "pages": [
//	        {"id": "home", "path": "/", "file": "example/index.html"},
//	        {"id": "post", "path": "/blog/*"},
//	        {"id": "old", "path": "/old", "redirect": "/"},
//	        {"id": "missing", "path": "/404", "file": "example/404.html"}
//	      ],
//	      "errorPages": [{"code": 404, "page": "missing"}]
//	    }
//	  ]
//	}
//
// Relative paths in the document resolve against the directory containing
// it; see Config.Resolve.
//
// # Loading
//
// Loader abstracts where a dispatch gets its configuration. FileLoader
// re-reads the file on every call, so edits take effect on the next
// request. Failures are typed:
//
//	cfg, err := config.NewFileLoader("server.json").Load(ctx)
//	if errors.Is(err, errors.ErrConfigMalformed) {
//	    // syntax error in the document
//	}
//
// # Settings
//
// Process options (listen address, timeouts, document path) come from
// LoadSettings, which reads an optional .env file and SITEMUX_* variables.
//
// # Thread Safety
//
// A loaded Config is treated as an immutable value. Callers must not modify
// one that may be in use by a dispatch.
package config
