// Package sitemux runs the sitemux command line with callbacks supplied by
// the caller. A program that registers its own handlers replaces
// cmd/sitemux with a main of its own:
//
//	func main() {
//		sitemux.Run("1.0.0", func(rt *router.Router) {
//			rt.Host("example.com").
//				Get("home", home).
//				Error(404, notFound)
//		})
//	}
//
// Programs that do not want the command line compose router.New and
// transport.NewServer directly.
package sitemux

import (
	"github.com/ksyq12/sitemux/internal/cli"
	"github.com/ksyq12/sitemux/router"
)

// Run executes the command line. Every router built by serve or resolve is
// passed to each compose function before it handles a request.
func Run(version string, compose ...func(*router.Router)) {
	cli.SetVersion(version)
	for _, fn := range compose {
		cli.Compose(fn)
	}
	cli.Execute()
}
