// Command sitemux serves the websites of a site document. It registers no
// callbacks, so pages render from their redirect or file; see package
// sitemux for running the same command line with handlers.
package main

import (
	"github.com/ksyq12/sitemux"
)

// version is set by goreleaser via ldflags
var version = "dev"

func main() {
	sitemux.Run(version)
}
