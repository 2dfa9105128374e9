package cli

import (
	"fmt"

	"github.com/ksyq12/sitemux/config"
	"github.com/ksyq12/sitemux/internal/output"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the site document",
	Long: `Check the site document for mistakes that requests would otherwise
hit silently.

Checks:
  - The document can be read and decoded
  - Page templates compile
  - Error pages reference declared pages and real status codes
  - Static rules are [directory, prefix] pairs
  - Website ids are unique and carry no "www." prefix
  - Referenced files and directories exist (warnings)

The command fails when any error is found.

Examples:
  sitemux check
  sitemux check --json -c /srv/server.json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `json:"status"` // "success", "warning", "error"
	Message string `json:"message"`
}

// SiteStatus represents the checks of one website
type SiteStatus struct {
	Host    string        `json:"host"`
	Enabled bool          `json:"enabled"`
	Checks  []CheckResult `json:"checks"`
}

// CheckReport contains all diagnostic results
type CheckReport struct {
	Document      string        `json:"document"`
	Configuration []CheckResult `json:"configuration"`
	Websites      []SiteStatus  `json:"websites"`
	Errors        int           `json:"errors"`
	Warnings      int           `json:"warnings"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	loader, path, err := siteLoader()
	if err != nil {
		return err
	}

	report := &CheckReport{Document: path, Websites: []SiteStatus{}}
	cfg, loadErr := loader.Load(commandContext(cmd))
	if loadErr != nil {
		report.Configuration = []CheckResult{{Status: "error", Message: loadErr.Error()}}
		report.Errors = 1
	} else {
		buildCheckReport(report, cfg)
	}

	out := printer(cmd)
	if jsonOutput {
		if err := out.JSON(report); err != nil {
			return err
		}
	} else {
		displayCheckResults(out, report)
	}

	if report.Errors > 0 {
		return fmt.Errorf("%s has %d error(s)", path, report.Errors)
	}
	return nil
}

func buildCheckReport(report *CheckReport, cfg *config.Config) {
	report.Configuration = []CheckResult{{
		Status:  "success",
		Message: fmt.Sprintf("Document decoded (%d websites)", len(cfg.Websites)),
	}}
	if !cfg.IsEnabled() {
		report.Configuration = append(report.Configuration, CheckResult{
			Status:  "warning",
			Message: "Serving is disabled, every request answers 503",
		})
		report.Warnings++
	}

	byHost := make(map[string][]config.Problem)
	for _, p := range config.Validate(cfg) {
		if p.Severity == config.SeverityError {
			report.Errors++
		} else {
			report.Warnings++
		}
		if p.Host == "" {
			report.Configuration = append(report.Configuration, problemResult(p))
			continue
		}
		byHost[p.Host] = append(byHost[p.Host], p)
	}

	seen := make(map[string]bool)
	for i := range cfg.Websites {
		w := &cfg.Websites[i]
		if w.ID == "" || seen[w.ID] {
			continue
		}
		seen[w.ID] = true

		status := SiteStatus{Host: w.ID, Enabled: w.IsEnabled(), Checks: []CheckResult{}}
		for _, p := range byHost[w.ID] {
			status.Checks = append(status.Checks, problemResult(p))
		}
		if len(status.Checks) == 0 {
			status.Checks = append(status.Checks, CheckResult{
				Status:  "success",
				Message: fmt.Sprintf("%d pages, %d static rules", len(w.Pages), len(w.Static)),
			})
		}
		report.Websites = append(report.Websites, status)
	}
}

func problemResult(p config.Problem) CheckResult {
	status := "warning"
	if p.Severity == config.SeverityError {
		status = "error"
	}
	return CheckResult{Status: status, Message: p.Message}
}

func displayCheckResults(out *output.Printer, report *CheckReport) {
	out.Print("Checking %s...", report.Document)
	for _, check := range report.Configuration {
		displayCheck(out, "", check)
	}
	out.Print("")

	if len(report.Websites) == 0 {
		out.Print("No websites configured")
		return
	}

	out.Print("Checking websites...")
	for _, site := range report.Websites {
		for _, check := range site.Checks {
			displayCheck(out, site.Host+" - ", check)
		}
	}
	out.Print("")
	out.Print("%d error(s), %d warning(s)", report.Errors, report.Warnings)
}

func displayCheck(out *output.Printer, prefix string, check CheckResult) {
	switch check.Status {
	case "success":
		out.Success("%s%s", prefix, check.Message)
	case "warning":
		out.Warn("%s%s", prefix, check.Message)
	case "error":
		out.Error("%s%s", prefix, check.Message)
	}
}
