package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/bladr/internal/report"
)

// NewHeatmapCommand creates the heatmap command.
func NewHeatmapCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show the 30-day leak heatmap",
		Long: `Show leak frequency over the trailing 30 days on a week-aligned
grid. The window is anchored on today regardless of any viewed date;
days shown only to complete a week row carry no intensity.

The week starts on Sunday unless week_start is set in the config file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeatmap(rootOpts, cmd)
		},
	}
	return cmd
}

func runHeatmap(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	ed, slot, err := openEditor(opts)
	if err != nil {
		return err
	}
	defer slot.Close()

	hm := report.BuildHeatmap(ed.Snapshot(), opts.Now(), opts.Config.WeekStartDay())

	if opts.Format == "json" {
		return formatter.Success(hm)
	}
	report.RenderHeatmap(cmd.OutOrStdout(), hm)
	return nil
}
