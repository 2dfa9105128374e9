package cli

import (
	"os"

	"github.com/ksyq12/sitemux/internal/logger"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	configPath string
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sitemux",
	Short: "Serve many websites from one process",
	Long: `sitemux serves several independently configured websites behind a single
HTTP listener. Requests are routed by hostname, then by static prefix,
page template or error fallback as declared in the site document
(server.json by default).

Besides serving, it can list and inspect the configured websites, validate
the document, and dry-run a request to see how it would be answered.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the site document (default $SITEMUX_CONFIG or server.json)")
}
