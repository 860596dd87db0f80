package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/bladr/internal/diary"
)

// NewImportCommand creates the import command. Import is all-or-
// nothing: the file must validate against the event schema before the
// slot is replaced wholesale, and a rejected file leaves the existing
// collection untouched.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all events from a JSON file",
		Long: `Import a previously exported JSON file, replacing the whole event
collection. The file is validated against the event schema first;
nothing is written unless the whole document is valid.

Example:
  bladr import bladder-buddy-export-2026-09-01.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runImport(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	data, err := os.ReadFile(path)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("cannot read %s: %v", path, err), nil)
		return WrapExitError(ExitCommandError, "cannot read import file", err)
	}

	if err := diary.ValidateDocument(data); err != nil {
		_ = formatter.Error(ErrCodeBadDocument, err.Error(), nil)
		return WrapExitError(ExitFailure, "import rejected", err)
	}

	var events []diary.Event
	if err := json.Unmarshal(data, &events); err != nil {
		_ = formatter.Error(ErrCodeBadDocument, err.Error(), nil)
		return WrapExitError(ExitFailure, "import rejected", err)
	}

	ed, slot, err := openEditor(opts)
	if err != nil {
		return err
	}
	defer slot.Close()

	if err := ed.ReplaceAll(events); err != nil {
		_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "import failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]any{"file": path, "events": len(events)})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d events from %s\n", len(events), path)
	return nil
}
