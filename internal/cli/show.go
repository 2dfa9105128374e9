package cli

import (
	"fmt"
	"strings"

	"github.com/ksyq12/sitemux/internal/hostname"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <host>",
	Short: "Show details of a website",
	Long: `Show how a website is configured. A leading "www." is ignored, the
same way requests are matched.

Examples:
  sitemux show example.com
  sitemux show www.example.com --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	host := hostname.Canonical(hostname.StripPort(args[0]))
	if host == "" {
		return fmt.Errorf("host cannot be empty")
	}

	cfg, err := loadConfig(commandContext(cmd))
	if err != nil {
		return err
	}

	w, ok := cfg.Website(host)
	if !ok {
		return fmt.Errorf("website %s not found", host)
	}

	out := printer(cmd)
	if jsonOutput {
		return out.JSON(w)
	}

	out.Print("")
	out.Field("Host", w.ID)
	out.Field("Enabled", yesNo(w.IsEnabled()))
	out.Field("WWW", wwwPolicy(&w))
	if w.Favicon != "" {
		out.Field("Favicon", cfg.Resolve(w.Favicon))
	}
	if len(w.AllowedOrigins) > 0 {
		out.Field("Origins", strings.Join(w.AllowedOrigins, ", "))
	}

	if len(w.Static) > 0 {
		out.Print("")
		rows := make([][]string, 0, len(w.Static))
		for _, rule := range w.Static {
			if !rule.Valid {
				rows = append(rows, []string{"(invalid)", ""})
				continue
			}
			rows = append(rows, []string{rule.URLPrefix, cfg.Resolve(rule.Directory)})
		}
		out.Table([]string{"PREFIX", "DIRECTORY"}, rows)
	}

	if len(w.Pages) > 0 {
		out.Print("")
		rows := make([][]string, 0, len(w.Pages))
		for _, p := range w.Pages {
			target := "-"
			switch {
			case p.Redirect != "":
				target = "→ " + p.Redirect
			case p.File != "":
				target = p.File
			}
			rows = append(rows, []string{p.ID, p.Path, target})
		}
		out.Table([]string{"PAGE", "PATH", "CONTENT"}, rows)
	}

	if len(w.ErrorPages) > 0 {
		out.Print("")
		rows := make([][]string, 0, len(w.ErrorPages))
		for _, e := range w.ErrorPages {
			rows = append(rows, []string{itoa(e.Code), e.Page})
		}
		out.Table([]string{"STATUS", "PAGE"}, rows)
	}
	out.Print("")
	return nil
}
