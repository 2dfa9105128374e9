package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ksyq12/sitemux/config"
	"github.com/ksyq12/sitemux/internal/logger"
	"github.com/ksyq12/sitemux/router"
	"github.com/spf13/cobra"
)

var (
	serveListen string
	serveGzip   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the configured websites",
	Long: `Start the HTTP server. The site document is read again for every request,
so edits take effect without a restart.

Settings come from flags, then SITEMUX_* environment variables, then a
.env file in the working directory.

Examples:
  sitemux serve
  sitemux serve --listen :80 --gzip
  sitemux serve -c /srv/sites/server.json -v`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "Listen address (default $SITEMUX_LISTEN or :8080)")
	serveCmd.Flags().BoolVar(&serveGzip, "gzip", false, "Compress responses")
	rootCmd.AddCommand(serveCmd)
}

// composers run against every router built by serve
var composers []func(*router.Router)

// Compose registers fn to add callbacks to the router before serving.
func Compose(fn func(*router.Router)) {
	composers = append(composers, fn)
}

func newRouter(loader config.Loader) *router.Router {
	rt := router.New(loader)
	for _, fn := range composers {
		fn(rt)
	}
	return rt
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if serveListen != "" {
		settings.Listen = serveListen
	}
	if serveGzip {
		settings.Gzip = true
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := deps.ConfigLoader.Loader(settings.ConfigPath)
	if cfg, err := loader.Load(ctx); err != nil {
		logger.Warn("%v; requests will answer 404 until it is fixed", err)
	} else if problems := config.Validate(cfg); config.HasErrors(problems) {
		logger.Warn("%s has errors, run 'sitemux check'", settings.ConfigPath)
	}

	rt := newRouter(loader)
	printer(cmd).Info("Serving %s on %s", settings.ConfigPath, settings.Listen)
	return deps.ServerRunner.Run(ctx, rt, *settings)
}
