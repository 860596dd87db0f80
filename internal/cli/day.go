package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bladr/internal/report"
)

// dayView is the JSON payload for the day command.
type dayView struct {
	Summary  report.Summary `json:"summary"`
	Timeline []report.Entry `json:"timeline"`
}

// NewDayCommand creates the day command: summary plus timeline for a
// viewed date.
func NewDayCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Show the summary and timeline for a day",
		Long: `Show the daily summary and reverse-chronological timeline for a
calendar day. Both views are computed over the same set of events.

The viewed date defaults to today and may not be in the future.

Example:
  bladr day
  bladr day 2026-08-30`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return runDay(rootOpts, arg, cmd)
		},
	}
	return cmd
}

func runDay(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	day, err := parseViewDate(opts.Now(), arg)
	if err != nil {
		_ = formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid date", err)
	}

	ed, slot, err := openEditor(opts)
	if err != nil {
		return err
	}
	defer slot.Close()

	events := ed.Snapshot()
	dayEvents := report.FilterDay(events, day)
	summary := report.Summarize(day, dayEvents)
	timeline := report.BuildTimeline(events, day)

	if opts.Format == "json" {
		return formatter.Success(dayView{Summary: summary, Timeline: timeline})
	}

	out := cmd.OutOrStdout()
	report.RenderSummary(out, summary, opts.Config.VolumeUnit)
	fmt.Fprintln(out)
	report.RenderTimeline(out, day, timeline)
	return nil
}
