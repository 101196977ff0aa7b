package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradelens-dev/tradelens/internal/buildinfo"
	"github.com/tradelens-dev/tradelens/internal/report"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered. Running the bare root starts the interactive menu.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "tradelens",
		Short:   "P/L and cash-flow statistics for a broker transaction export",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.file, "file", "", "ledger export path (overrides config)")
	pf.StringVar(&opts.configPath, "config", "tradelens.yaml", "config file path")
	pf.StringVar(&opts.asOf, "as-of", "", "reference date as yyyy-mm-dd (default today)")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newShowCommand(opts, "daily", "Daily and running statistics", (*report.Renderer).Daily),
		newShowCommand(opts, "history", "Historical trailing-window statistics", (*report.Renderer).Historical),
		newShowCommand(opts, "summary", "Account summary", (*report.Renderer).Summary),
		newShowCommand(opts, "all", "All statistics combined", (*report.Renderer).All),
	)

	return rootCmd
}
