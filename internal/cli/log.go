package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bladr/internal/diary"
)

// LogOptions holds flags for the log command.
type LogOptions struct {
	*RootOptions
	Type     string
	Volume   int
	Urgency  int
	Severity int
	Trigger  string
	Notes    string
	Date     string
	Time     string
}

// NewLogCommand creates the log command for urination and leak events.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a urination or leak event",
		Long: `Log a urination or leak event.

Without --date/--time the event is stamped with the current time (the
quick-log flow). Events may be backdated but never future-dated.

Example:
  bladr log --urgency 4 --volume 60
  bladr log --type leak --severity 2 --trigger Sneezing
  bladr log --date 2026-08-30 --time 07:45 --notes "after coffee"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "urination", "event type (urination|leak)")
	cmd.Flags().IntVar(&opts.Volume, "volume", 50, "estimated volume, percent of typical capacity (0-100)")
	cmd.Flags().IntVar(&opts.Urgency, "urgency", 3, "urgency level 1-5 (urination only)")
	cmd.Flags().IntVar(&opts.Severity, "severity", 2, "severity 1-5 (leak only)")
	cmd.Flags().StringVar(&opts.Trigger, "trigger", "", "trigger from the fixed vocabulary")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "free-text notes")
	cmd.Flags().StringVar(&opts.Date, "date", "", "event date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "event time HH:MM (default now)")

	return cmd
}

func runLog(opts *LogOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	draft, err := buildLogDraft(opts)
	if err != nil {
		_ = formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid input", err)
	}

	ed, slot, err := openEditor(opts.RootOptions)
	if err != nil {
		return err
	}
	defer slot.Close()

	ev, err := ed.Create(draft)
	if err != nil {
		// The event exists for this session; only the write failed.
		formatter.VerboseLog("write failure: %v", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: event logged but not saved: %v\n", err)
	}

	if opts.Format == "json" {
		return formatter.Success(ev)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged %s at %s (id %s)\n",
		ev.Type, ev.Timestamp.Format("3:04 PM"), ev.ID)
	return nil
}

// buildLogDraft validates flags and assembles the event draft. Range
// checks live here, at the input layer - the editor assumes them.
func buildLogDraft(opts *LogOptions) (diary.Event, error) {
	evType := diary.EventType(opts.Type)
	if evType != diary.TypeUrination && evType != diary.TypeLeak {
		return diary.Event{}, fmt.Errorf("invalid type %q: must be urination or leak", opts.Type)
	}
	if opts.Volume < 0 || opts.Volume > 100 {
		return diary.Event{}, fmt.Errorf("volume %d out of range 0-100", opts.Volume)
	}
	if opts.Urgency < 1 || opts.Urgency > 5 {
		return diary.Event{}, fmt.Errorf("urgency %d out of range 1-5", opts.Urgency)
	}
	if opts.Severity < 1 || opts.Severity > 5 {
		return diary.Event{}, fmt.Errorf("severity %d out of range 1-5", opts.Severity)
	}
	if opts.Trigger != "" && !diary.ValidTrigger(opts.Trigger) {
		return diary.Event{}, fmt.Errorf("unknown trigger %q: must be one of %v", opts.Trigger, diary.Triggers)
	}

	ts, err := resolveTimestamp(opts.Now(), opts.Date, opts.Time)
	if err != nil {
		return diary.Event{}, err
	}

	ev := diary.Event{
		Timestamp: ts,
		Type:      evType,
		Volume:    opts.Volume,
		Trigger:   opts.Trigger,
		Notes:     opts.Notes,
	}
	switch evType {
	case diary.TypeUrination:
		ev.Urgency = opts.Urgency
	case diary.TypeLeak:
		ev.Severity = opts.Severity
	}
	return ev, nil
}
