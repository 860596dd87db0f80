package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/bladr/internal/diary"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
	Yes bool
}

// NewDeleteCommand creates the delete command. Deletion is a single
// irreversible store operation; the two-step confirmation lives here
// in the command layer (prompt, or --yes to pre-confirm).
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event",
		Long: `Delete an event by ID. This cannot be undone.

Example:
  bladr delete 0192f2a4-... --yes`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runDelete(opts *DeleteOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	ed, slot, err := openEditor(opts.RootOptions)
	if err != nil {
		return err
	}
	defer slot.Close()

	ev, err := ed.Get(id)
	if errors.Is(err, diary.ErrNotFound) {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("no event with id %s", id), nil)
		return NewExitError(ExitFailure, "event not found")
	}

	if !opts.Yes {
		if !confirm(cmd, fmt.Sprintf("Delete %s event from %s? This cannot be undone.",
			ev.Type, ev.Timestamp.Format("Jan 2, 3:04 PM"))) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := ed.Delete(id); err != nil {
		_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "delete failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]string{"deleted": id})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted event %s\n", id)
	return nil
}

// confirm asks a yes/no question on the command's input stream.
// Anything but y/yes declines.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
