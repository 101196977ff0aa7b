package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"github.com/tradelens-dev/tradelens/internal/config"
	"github.com/tradelens-dev/tradelens/internal/ledger"
	"github.com/tradelens-dev/tradelens/internal/logger"
	"github.com/tradelens-dev/tradelens/internal/report"
	"github.com/tradelens-dev/tradelens/internal/stats"
)

// options holds the persistent flag values shared by every subcommand.
type options struct {
	file       string
	configPath string
	asOf       string
	debug      bool
}

// load resolves config and flags, loads the ledger, and builds the stats
// engine plus a renderer writing to the command's stdout.
func (o *options) load(cmd *cobra.Command) (*stats.Stats, *report.Renderer, error) {
	cfg := config.Default()
	loaded, err := config.Load(o.configPath)
	switch {
	case err == nil:
		cfg = loaded
	case errors.Is(err, fs.ErrNotExist):
		// No config file; defaults apply.
	default:
		return nil, nil, err
	}

	path := cfg.Ledger.File
	if o.file != "" {
		path = o.file
	}

	asOf := time.Now()
	if o.asOf != "" {
		asOf, err = time.Parse("2006-01-02", o.asOf)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing --as-of %q: %w", o.asOf, err)
		}
	}

	log, err := logger.New(o.debug || cfg.Logging.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	l, err := ledger.Load(path, log)
	if err != nil {
		return nil, nil, err
	}

	return stats.New(l, asOf), report.New(cmd.OutOrStdout(), cfg.Display.Currency), nil
}

// newShowCommand creates a subcommand rendering one report bundle.
func newShowCommand(opts *options, use, short string, render func(*report.Renderer, *stats.Stats)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, r, err := opts.load(cmd)
			if err != nil {
				return err
			}
			render(r, s)
			return nil
		},
	}
}
