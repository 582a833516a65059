package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/next-trace/release-errors/catalog"
	relError "github.com/next-trace/release-errors/error"
)

type report struct {
	Code    string `json:"code"`
	Key     string `json:"key"`
	Status  int    `json:"status,omitempty"`
	Message string `json:"message"`
	Details string `json:"details"`
}

func newReport(e *relError.Error) report {
	return report{
		Code:    e.Code(),
		Key:     e.Key(),
		Status:  e.HTTPStatus(),
		Message: e.Message(),
		Details: e.Details(),
	}
}

func newDescribeCmd() *cobra.Command {
	var (
		sets        []string
		contextFile string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "describe CODE",
		Short: "Render the message and details for an error code",
		Example: `  relerr describe EMISSINGREPO --set owner=acme --set repo=widgets
  relerr describe einvalidassets --set 'assets=[dist/*.zip, {label: x}]' --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := catalog.ParseKind(args[0])
			if err != nil {
				return err
			}

			ctx, err := loadContext(contextFile, sets)
			if err != nil {
				return err
			}

			e := relError.Get(kind, ctx)
			slog.Debug("rendering descriptor", "error", e, "fields", len(ctx))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(newReport(e))
			}
			return renderMarkdown(cmd.OutOrStdout(), e)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Context field as key=value, value decoded as YAML (repeatable)")
	cmd.Flags().StringVarP(&contextFile, "context-file", "f", "", "YAML file holding context fields")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print a JSON object instead of Markdown")

	return cmd
}

func renderMarkdown(w io.Writer, e *relError.Error) error {
	header := color.New(color.FgRed, color.Bold)
	if _, err := header.Fprintf(w, "%s %s\n", e.Code(), e.Message()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", e.Details())
	return err
}
