package commands

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute(version string) error {
	root := NewRootCmd(version)

	err := root.Execute()
	if err != nil {
		slog.Error("command failed", "error", err.Error())
	}
	return err
}

// NewRootCmd builds the relerr command tree.
func NewRootCmd(version string) *cobra.Command {
	var (
		verbose bool
		noColor bool
	)

	root := &cobra.Command{
		Use:           "relerr",
		Short:         "Browse and render release error descriptors",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose || envEnabled("RELERR_VERBOSE") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			if noColor {
				color.NoColor = true
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging (default: $RELERR_VERBOSE)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output (also honours $NO_COLOR)")

	root.AddCommand(newListCmd())
	root.AddCommand(newDescribeCmd())

	return root
}

func envEnabled(name string) bool {
	v := os.Getenv(name)
	return v == "1" || v == "true"
}
