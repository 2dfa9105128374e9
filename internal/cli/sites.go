package cli

import (
	"github.com/ksyq12/sitemux/config"
	"github.com/spf13/cobra"
)

var sitesCmd = &cobra.Command{
	Use:     "sites",
	Aliases: []string{"ls"},
	Short:   "List configured websites",
	Long: `List the websites of the site document in declaration order.

Examples:
  sitemux sites
  sitemux ls --json
  sitemux sites -c /srv/server.json`,
	Args: cobra.NoArgs,
	RunE: runSites,
}

func init() {
	rootCmd.AddCommand(sitesCmd)
}

type siteListItem struct {
	Host    string `json:"host"`
	Enabled bool   `json:"enabled"`
	WWW     string `json:"www"`
	Pages   int    `json:"pages"`
	Static  int    `json:"static"`
	Errors  int    `json:"error_pages"`
}

func newSiteListItem(w *config.WebsiteConfig) siteListItem {
	return siteListItem{
		Host:    w.ID,
		Enabled: w.IsEnabled(),
		WWW:     wwwPolicy(w),
		Pages:   len(w.Pages),
		Static:  len(w.Static),
		Errors:  len(w.ErrorPages),
	}
}

func runSites(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(commandContext(cmd))
	if err != nil {
		return err
	}
	out := printer(cmd)

	items := make([]siteListItem, 0, len(cfg.Websites))
	for i := range cfg.Websites {
		items = append(items, newSiteListItem(&cfg.Websites[i]))
	}

	if jsonOutput {
		return out.JSON(items)
	}

	if !cfg.IsEnabled() {
		out.Warn("Serving is disabled: every request answers 503")
	}
	if len(items) == 0 {
		out.Info("No websites configured")
		return nil
	}

	headers := []string{"HOST", "ENABLED", "WWW", "PAGES", "STATIC", "ERROR PAGES"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Host,
			yesNo(item.Enabled),
			item.WWW,
			itoa(item.Pages),
			itoa(item.Static),
			itoa(item.Errors),
		})
	}
	out.Table(headers, rows)
	return nil
}
