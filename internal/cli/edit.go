package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bladr/internal/diary"
)

// EditOptions holds flags for the edit command.
type EditOptions struct {
	*RootOptions
	Type     string
	Volume   int
	Urgency  int
	Severity int
	Trigger  string
	Notes    string
	Drink    string
	Date     string
	Time     string
}

// NewEditCommand creates the edit command. An edit replaces all
// mutable fields of the event wholesale; flags left unset keep the
// event's current values, like a form opened with its fields
// pre-filled. The ID is immutable.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an event",
		Long: `Edit an existing event by ID.

Example:
  bladr edit 0192f2a4-... --urgency 5
  bladr edit 0192f2a4-... --date 2026-08-30 --time 07:45`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "", "event type (urination|leak|fluid)")
	cmd.Flags().IntVar(&opts.Volume, "volume", 0, "volume (percent, or ml for fluid)")
	cmd.Flags().IntVar(&opts.Urgency, "urgency", 0, "urgency level 1-5 (urination only)")
	cmd.Flags().IntVar(&opts.Severity, "severity", 0, "severity 1-5 (leak only)")
	cmd.Flags().StringVar(&opts.Trigger, "trigger", "", "trigger from the fixed vocabulary")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "free-text notes")
	cmd.Flags().StringVar(&opts.Drink, "drink", "", "drink type (fluid only)")
	cmd.Flags().StringVar(&opts.Date, "date", "", "event date YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.Time, "time", "", "event time HH:MM")

	return cmd
}

func runEdit(opts *EditOptions, id string, cmd *cobra.Command) error {
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

	updated, err := applyEditFlags(opts, cmd, ev)
	if err != nil {
		_ = formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid input", err)
	}

	if err := ed.Update(updated); err != nil {
		formatter.VerboseLog("write failure: %v", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: event updated but not saved: %v\n", err)
	}

	final, _ := ed.Get(id)
	if opts.Format == "json" {
		return formatter.Success(final)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s event %s\n", final.Type, final.ID)
	return nil
}

// applyEditFlags overlays changed flags on the existing event and
// validates the result.
func applyEditFlags(opts *EditOptions, cmd *cobra.Command, ev diary.Event) (diary.Event, error) {
	flags := cmd.Flags()

	if flags.Changed("type") {
		t := diary.EventType(opts.Type)
		if !diary.ValidTypes[t] {
			return diary.Event{}, fmt.Errorf("invalid type %q", opts.Type)
		}
		ev.Type = t
	}
	if flags.Changed("volume") {
		ev.Volume = opts.Volume
	}
	if flags.Changed("urgency") {
		ev.Urgency = opts.Urgency
	}
	if flags.Changed("severity") {
		ev.Severity = opts.Severity
	}
	if flags.Changed("trigger") {
		ev.Trigger = opts.Trigger
	}
	if flags.Changed("notes") {
		ev.Notes = opts.Notes
	}
	if flags.Changed("drink") {
		ev.DrinkType = opts.Drink
	}

	if flags.Changed("date") || flags.Changed("time") {
		dateStr := ev.Timestamp.Format("2006-01-02")
		timeStr := ev.Timestamp.Format("15:04")
		if flags.Changed("date") {
			dateStr = opts.Date
		}
		if flags.Changed("time") {
			timeStr = opts.Time
		}
		now := opts.Now()
		ts, err := diary.CombineDateTime(dateStr, timeStr, now.Location())
		if err != nil {
			return diary.Event{}, fmt.Errorf("invalid date/time: %w", err)
		}
		if ts.After(now) {
			return diary.Event{}, fmt.Errorf("timestamp %s is in the future", ts.Format("2006-01-02 15:04"))
		}
		ev.Timestamp = ts
	}

	return ev, validateEdited(ev)
}

func validateEdited(ev diary.Event) error {
	switch ev.Type {
	case diary.TypeFluid:
		if ev.DrinkType != "" && !diary.ValidDrinkType(ev.DrinkType) {
			return fmt.Errorf("unknown drink %q: must be one of %v", ev.DrinkType, diary.DrinkTypes)
		}
		if ev.Volume != 0 && (ev.Volume < 50 || ev.Volume > 1000) {
			return fmt.Errorf("volume %dml out of range 50-1000", ev.Volume)
		}
	default:
		if ev.Volume < 0 || ev.Volume > 100 {
			return fmt.Errorf("volume %d out of range 0-100", ev.Volume)
		}
		if ev.Urgency < 0 || ev.Urgency > 5 {
			return fmt.Errorf("urgency %d out of range 1-5", ev.Urgency)
		}
		if ev.Severity < 0 || ev.Severity > 5 {
			return fmt.Errorf("severity %d out of range 1-5", ev.Severity)
		}
		if ev.Trigger != "" && !diary.ValidTrigger(ev.Trigger) {
			return fmt.Errorf("unknown trigger %q: must be one of %v", ev.Trigger, diary.Triggers)
		}
	}
	return nil
}
