package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bladr/internal/diary"
)

// DrinkOptions holds flags for the drink command.
type DrinkOptions struct {
	*RootOptions
	Drink  string
	Volume int
	Notes  string
	Date   string
	Time   string
}

// NewDrinkCommand creates the drink command for fluid-intake events.
func NewDrinkCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DrinkOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "drink",
		Short: "Log a fluid-intake event",
		Long: `Log a fluid-intake event.

The caffeine flag is derived from the drink type; it cannot be set
directly.

Example:
  bladr drink --drink Coffee --volume 300
  bladr drink --drink Water`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrink(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Drink, "drink", "Water", "drink type from the fixed vocabulary")
	cmd.Flags().IntVar(&opts.Volume, "volume", 250, "volume in millilitres (50-1000)")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "free-text notes")
	cmd.Flags().StringVar(&opts.Date, "date", "", "event date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "event time HH:MM (default now)")

	return cmd
}

func runDrink(opts *DrinkOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if !diary.ValidDrinkType(opts.Drink) {
		err := fmt.Errorf("unknown drink %q: must be one of %v", opts.Drink, diary.DrinkTypes)
		_ = formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid input", err)
	}
	if opts.Volume < 50 || opts.Volume > 1000 {
		err := fmt.Errorf("volume %dml out of range 50-1000", opts.Volume)
		_ = formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid input", err)
	}
	ts, err := resolveTimestamp(opts.Now(), opts.Date, opts.Time)
	if err != nil {
		_ = formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid input", err)
	}

	ed, slot, err := openEditor(opts.RootOptions)
	if err != nil {
		return err
	}
	defer slot.Close()

	ev, err := ed.Create(diary.Event{
		Timestamp: ts,
		Type:      diary.TypeFluid,
		Volume:    opts.Volume,
		DrinkType: opts.Drink,
		Notes:     opts.Notes,
	})
	if err != nil {
		formatter.VerboseLog("write failure: %v", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: event logged but not saved: %v\n", err)
	}

	if opts.Format == "json" {
		return formatter.Success(ev)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged %dml %s at %s (id %s)\n",
		ev.Volume, ev.DrinkType, ev.Timestamp.Format("3:04 PM"), ev.ID)
	if ev.Caffeine {
		fmt.Fprintln(cmd.OutOrStdout(), "Contains caffeine.")
	}
	return nil
}
