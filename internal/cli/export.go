package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command. The export document is
// schema-identical to the persisted slot: a JSON array of events.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export all events to a JSON file",
		Long: `Export the whole event collection to a JSON file.

The default file name is bladder-buddy-export-<date>.json in the
current directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runExport(rootOpts, path, cmd)
		},
	}
	return cmd
}

func runExport(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	ed, slot, err := openEditor(opts)
	if err != nil {
		return err
	}
	defer slot.Close()

	events := ed.Snapshot()
	if len(events) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No data to export.")
		return nil
	}

	if path == "" {
		path = fmt.Sprintf("bladder-buddy-export-%s.json", opts.Now().Format("2006-01-02"))
	}

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return WrapExitError(ExitFailure, "failed to encode events", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to write export", err)
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]any{"file": path, "events": len(events)})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d events to %s\n", len(events), path)
	return nil
}
