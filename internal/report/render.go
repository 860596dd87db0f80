package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Text rendering for the three views. The renderers only format values
// the pure builders computed; rounding (one decimal for urgency and
// severity, integer volume percent) happens here.

// RenderSummary writes the daily summary as text. unit selects the
// fluid display unit ("ml", "oz" or "cup"); totals are stored in ml.
func RenderSummary(w io.Writer, s Summary, unit string) {
	fmt.Fprintf(w, "Summary for %s\n\n", s.Day)
	fmt.Fprintf(w, "  %-14s %d\n", "Urinations:", s.UrinationCount)
	fmt.Fprintf(w, "  %-14s %d\n", "Leak events:", s.LeakCount)
	fmt.Fprintf(w, "  %-14s %s\n", "Fluid intake:", formatVolume(s.FluidTotalMl, unit))
	if s.AvgUrgency > 0 {
		fmt.Fprintf(w, "  %-14s %.1f/5\n", "Avg urgency:", s.AvgUrgency)
	} else {
		fmt.Fprintf(w, "  %-14s -\n", "Avg urgency:")
	}
	if s.AvgVolumePercent > 0 {
		fmt.Fprintf(w, "  %-14s %.0f%%\n", "Avg volume:", s.AvgVolumePercent)
	}
	if s.AvgSeverity > 0 {
		fmt.Fprintf(w, "  %-14s %.1f/5\n", "Avg severity:", s.AvgSeverity)
	}
}

// RenderTimeline writes the day's entries, newest first.
func RenderTimeline(w io.Writer, day time.Time, entries []Entry) {
	fmt.Fprintf(w, "Timeline for %s\n\n", day.Format("2006-01-02"))
	if len(entries) == 0 {
		fmt.Fprintln(w, "  No events logged for this day.")
		return
	}
	for _, e := range entries {
		ev := e.Event
		fmt.Fprintf(w, "  %-8s  %s\n", ev.Timestamp.Format("3:04 PM"), e.Label)
		if ev.Volume > 0 {
			if e.Icon == IconCoffee {
				fmt.Fprintf(w, "            Volume: %dml\n", ev.Volume)
			} else {
				fmt.Fprintf(w, "            Volume: %d%%\n", ev.Volume)
			}
		}
		if ev.Urgency > 0 {
			fmt.Fprintf(w, "            Urgency: %d/5\n", ev.Urgency)
		}
		if ev.Severity > 0 {
			fmt.Fprintf(w, "            Severity: %d/5\n", ev.Severity)
		}
		if ev.Trigger != "" {
			fmt.Fprintf(w, "            Trigger: %s\n", ev.Trigger)
		}
		if ev.Notes != "" {
			fmt.Fprintf(w, "            %s\n", ev.Notes)
		}
	}
}

// intensityGlyphs maps each bucket to its cell glyph, dark to light.
var intensityGlyphs = map[Intensity]string{
	IntensityZero:   ".",
	IntensityLow:    "░",
	IntensityMedium: "▒",
	IntensityHigh:   "▓",
	IntensityMax:    "█",
}

// RenderHeatmap writes the week-aligned leak grid. Grid-filler days
// outside the window render blank; today is bracketed.
func RenderHeatmap(w io.Writer, hm Heatmap) {
	noun := "leaks"
	if hm.TotalLeaks == 1 {
		noun = "leak"
	}
	fmt.Fprintf(w, "Leak heatmap: %d %s in past %d days\n\n", hm.TotalLeaks, noun, WindowDays)
	if len(hm.Weeks) == 0 {
		return
	}

	for _, d := range hm.Weeks[0] {
		fmt.Fprintf(w, " %3s", d.Date.Weekday().String()[:3])
	}
	fmt.Fprintln(w)

	for _, week := range hm.Weeks {
		var row strings.Builder
		for _, d := range week {
			fmt.Fprintf(&row, " %3s", cell(d))
		}
		// Filler cells at the end of the last row would otherwise leave
		// trailing spaces.
		fmt.Fprintln(w, strings.TrimRight(row.String(), " "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Less . ░ ▒ ▓ █ More")
}

func cell(d Day) string {
	if !d.InWindow {
		return ""
	}
	glyph := intensityGlyphs[d.Intensity]
	if d.Today {
		return "[" + glyph + "]"
	}
	return glyph
}

// formatVolume renders a millilitre total in the configured unit.
func formatVolume(ml int, unit string) string {
	switch unit {
	case "oz":
		return fmt.Sprintf("%.1foz", float64(ml)/29.5735)
	case "cup":
		return fmt.Sprintf("%.1f cups", float64(ml)/240)
	default:
		return fmt.Sprintf("%dml", ml)
	}
}
