// Package cli provides the Cobra command structure for tidesel.
package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/bethropolis/tidesel/internal/app"
	"github.com/bethropolis/tidesel/internal/config"
	"github.com/bethropolis/tidesel/internal/logger"
	"github.com/bethropolis/tidesel/internal/source"
)

// rootState is shared by all commands: flags are bound before parsing,
// the config and logger are set up in PersistentPreRunE.
type rootState struct {
	flags   config.Flags
	cfg     *config.Config
	cleanup func()
}

// NewRootCommand creates the root tidesel command with all subcommands.
func NewRootCommand() *cobra.Command {
	st := &rootState{cleanup: func() {}}

	rootCmd := &cobra.Command{
		Use:   "tidesel [file|url]",
		Short: "Try CSS selectors against markup and see what they match",
		Long: `tidesel loads an HTML document from a file or URL and evaluates CSS
selectors against it as you type, highlighting every matched element in
the source text and describing the selector in plain English.`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: st.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) { st.cleanup() },
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: func(_ *cobra.Command, args []string) error {
			target := ""
			if len(args) > 0 {
				target = args[0]
			}
			logger.Infof("Starting %s...", config.AppName)

			a, err := app.NewApp(app.Options{Config: st.cfg, Target: target, Force: st.flags.Force})
			if err != nil {
				return fmt.Errorf("error initializing application: %w", err)
			}
			return a.Run()
		},
	}

	st.flags.DefineFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newQueryCommand(st))
	rootCmd.AddCommand(newScanCommand(st))

	return rootCmd
}

// setup loads the configuration and starts logging.
func (st *rootState) setup(_ *cobra.Command, _ []string) error {
	cfg, warnings, err := config.Load(st.flags.ConfigFilePath, &st.flags)
	if err != nil {
		return err
	}
	st.cfg = cfg

	logger.SetFilterDebug(st.flags.DebugLog)
	cleanup, err := logger.Setup(cfg.Logger)
	if err != nil {
		return err
	}
	st.cleanup = cleanup

	for _, w := range warnings {
		logger.Warnf("%s", w)
	}
	logger.Debugf("Config: parser=%s theme=%q tabwidth=%d", cfg.Markup.Parser, cfg.Theme.Name, cfg.UI.TabWidth)
	return nil
}

// open loads target and refuses documents with warnings unless --force is set.
func (st *rootState) open(ctx context.Context, target string) (*source.Document, error) {
	fetcher := &source.Fetcher{
		Client:    &http.Client{Timeout: st.cfg.Import.Timeout.Duration},
		MaxSize:   st.cfg.Import.MaxSize,
		UserAgent: config.AppName,
	}
	doc, err := fetcher.Open(ctx, target)
	if err != nil {
		return nil, err
	}
	if err := doc.Confirm(st.flags.Force); err != nil {
		return nil, err
	}
	return doc, nil
}
