package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/next-trace/release-errors/catalog"
	relError "github.com/next-trace/release-errors/error"
)

type listEntry struct {
	Code   string `json:"code"`
	Key    string `json:"key"`
	Status int    `json:"status,omitempty"`
}

func newListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every error code in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := catalog.Kinds()
			entries := make([]listEntry, 0, len(kinds))
			for _, k := range kinds {
				e := relError.Get(k, nil)
				entries = append(entries, listEntry{Code: e.Code(), Key: e.Key(), Status: e.HTTPStatus()})
			}

			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(entries)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tKEY\tSTATUS")
			for _, e := range entries {
				status := "-"
				if e.Status != 0 {
					status = fmt.Sprint(e.Status)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Code, e.Key, status)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print a JSON array")

	return cmd
}
