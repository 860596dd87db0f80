package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/bladr/internal/config"
	"github.com/roach88/bladr/internal/diary"
	"github.com/roach88/bladr/internal/store"
)

// RootOptions holds global flags and resolved configuration for all
// commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	DataPath   string // slot path; empty means config/default
	Backend    string // "json" | "sqlite"; empty means config/default

	// Config is resolved in PersistentPreRunE.
	Config *config.Config

	// Now allows overriding the wall clock (for testing).
	// If nil, defaults to time.Now.
	Now func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the bladr CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bladr",
		Short: "Bladr - bladder diary",
		Long:  "A local-first bladder diary: log urination, leak and fluid-intake events and review daily summaries, timelines and a 30-day leak heatmap.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			// Configure logging based on verbose flag. Logs go to stderr
			// so they never corrupt JSON output.
			logLevel := slog.LevelWarn
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			})
			slog.SetDefault(slog.New(handler))

			return opts.resolve()
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default: user config dir)")
	cmd.PersistentFlags().StringVar(&opts.DataPath, "data", "", "event slot path (default: ~/.bladr)")
	cmd.PersistentFlags().StringVar(&opts.Backend, "store", "", "store backend (json|sqlite)")

	// Add subcommands
	cmd.AddCommand(NewLogCommand(opts))
	cmd.AddCommand(NewDrinkCommand(opts))
	cmd.AddCommand(NewDayCommand(opts))
	cmd.AddCommand(NewHeatmapCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))

	return cmd
}

// resolve loads the config file and fills in unset flag values.
func (o *RootOptions) resolve() error {
	path := o.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	o.Config = cfg

	if o.Backend == "" {
		o.Backend = cfg.Store
	}
	if o.DataPath == "" {
		cfg.Store = o.Backend
		o.DataPath = cfg.SlotPath()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return nil
}

// openEditor opens the configured slot and hydrates an editor from it.
// The returned Slot must be closed by the caller.
func openEditor(opts *RootOptions) (*diary.Editor, store.Slot, error) {
	slog.Debug("opening store", "backend", opts.Backend, "path", opts.DataPath)
	slot, err := store.Open(opts.Backend, opts.DataPath)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open store", err)
	}
	ed, err := diary.NewEditor(slot)
	if err != nil {
		slot.Close()
		return nil, nil, WrapExitError(ExitCommandError, "failed to load events", err)
	}
	slog.Debug("events loaded", "count", ed.Len())
	return ed, slot, nil
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
