package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bladr/internal/diary"
)

// ClearOptions holds flags for the clear command.
type ClearOptions struct {
	*RootOptions
	Yes bool
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClearOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all events",
		Long:  "Delete the whole event collection. This cannot be undone.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(opts, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runClear(opts *ClearOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	ed, slot, err := openEditor(opts.RootOptions)
	if err != nil {
		return err
	}
	defer slot.Close()

	if ed.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No data to clear.")
		return nil
	}

	if !opts.Yes {
		if !confirm(cmd, fmt.Sprintf("Clear all %d events? This cannot be undone.", ed.Len())) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := ed.ReplaceAll([]diary.Event{}); err != nil {
		_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "clear failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]string{"cleared": "all"})
	}
	fmt.Fprintln(cmd.OutOrStdout(), "All data cleared.")
	return nil
}
