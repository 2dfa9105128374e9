package cli

import (
	"fmt"
	"strings"

	"github.com/ksyq12/sitemux/router"
	"github.com/spf13/cobra"
)

var (
	resolveMethod string
	resolveOrigin string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Show how a request would be answered",
	Long: `Dispatch one request against the site document without starting a
server and print the resulting directives.

Callbacks registered in code are part of the answer only for the serve
command; here pages without redirect or file show the placeholder.

Examples:
  sitemux resolve http://example.com/
  sitemux resolve https://www.example.com/blog/hello --method POST
  sitemux resolve http://cdn.example.com/app.js --origin https://example.com --json`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveMethod, "method", "X", "GET", "Request method")
	resolveCmd.Flags().StringVar(&resolveOrigin, "origin", "", "Origin header value")
	rootCmd.AddCommand(resolveCmd)
}

type resolveResult struct {
	URL        string             `json:"url"`
	Method     string             `json:"method"`
	Status     int                `json:"status"`
	Directives []router.Directive `json:"directives"`
	Params     map[string]string  `json:"params,omitempty"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	loader, _, err := siteLoader()
	if err != nil {
		return err
	}

	method := strings.ToUpper(resolveMethod)
	req, err := router.NewRequest(commandContext(cmd), method, args[0])
	if err != nil {
		return err
	}
	req.Origin = resolveOrigin

	rec := router.NewRecorder()
	newRouter(loader).Dispatch(req, rec)

	result := resolveResult{
		URL:        args[0],
		Method:     method,
		Status:     rec.StatusCode,
		Directives: rec.Directives,
	}
	if req.Params.Len() > 0 {
		result.Params = req.Params.Map()
	}
	if result.Directives == nil {
		result.Directives = []router.Directive{}
	}

	out := printer(cmd)
	if jsonOutput {
		return out.JSON(result)
	}

	out.Print("%s %s", method, args[0])
	out.Field("Status", rec.StatusCode)
	for i, v := range req.Params {
		out.Field(fmt.Sprintf("Param %d", i), v)
	}
	if len(rec.Directives) == 0 {
		out.Warn("no directives")
		return nil
	}
	rows := make([][]string, 0, len(rec.Directives))
	for _, d := range rec.Directives {
		value := d.Value
		if d.Key != "" {
			value = d.Key + ": " + d.Value
		}
		rows = append(rows, []string{d.Kind, truncate(value, 72)})
	}
	out.Print("")
	out.Table([]string{"DIRECTIVE", "VALUE"}, rows)
	return nil
}
