/*
PURPOSE:
  Renders a workout into the human-readable block appended to the workout log.

REQUIREMENTS:
  User-specified:
  - Separator line, title, logged_at, start/end, duration, exercises.
  - Timestamps as `YYYY-MM-DD at HH:MM - Weekday` in a fixed zone.
  - Duration as `Hh Mm Ss`, leading zero units omitted.
  - One line per set; em-dash when nothing recognisable is set.

  Implementation-discovered:
  - RPE is only printed together with weight/reps, never on its own.
  - Set durations use a clock layout (m:ss / h:mm:ss), unlike the workout
    duration.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (runner), internal/cli (recent)
  - Consumes: internal/model.Workout

ERROR HANDLING:
  - None. Input is validated by internal/engine before rendering.

IMPLEMENTATION RULES:
  - Pure functions of their inputs; "now" is passed in.
  - Build the whole block in memory; writers get a finished string.

USAGE:
  block := output.FormatWorkout(w, time.Now(), loc)

RELATED FILES:
  - internal/output/writer.go
  - internal/model/types.go
*/

package output

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/daryltucker/hevy-metrics/internal/model"
)

const (
	// Separator opens every appended block.
	Separator = "---"
	// Placeholder is printed for a set with no recognised fields.
	Placeholder = "—"

	timestampLayout = "2006-01-02 at 15:04 - Monday"
)

// FormatTimestamp renders t in loc as `2006-01-02 at 15:04 - Monday`.
func FormatTimestamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timestampLayout)
}

// FormatDurationHMS renders whole seconds as "1h 2m 3s", "2m 5s" or "7s".
// Negative input is clamped to zero; fractions are floored.
func FormatDurationHMS(d time.Duration) string {
	s := int64(max(0, d.Seconds()))
	h := s / 3600
	m := (s % 3600) / 60
	sec := s % 60

	var parts []string
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 || h > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	parts = append(parts, fmt.Sprintf("%ds", sec))
	return strings.Join(parts, " ")
}

// formatClock renders a set duration as m:ss, or h:mm:ss past the hour.
func formatClock(seconds float64) string {
	s := math.Floor(math.Mod(seconds, 60))
	m := math.Floor(math.Mod(seconds/60, 60))
	h := math.Floor(seconds / 3600)
	if h != 0 {
		return fmt.Sprintf("%.0f:%02.0f:%02.0f", h, m, s)
	}
	return fmt.Sprintf("%.0f:%02.0f", m, s)
}

// formatNumber prints the shortest decimal form: 8, 8.5, 5000.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatSet summarises one set, e.g. "60.00 kg x 10 reps | RPE 8".
func FormatSet(set model.Set) string {
	var parts []string

	if set.WeightKg != nil || set.Reps != nil {
		var wr []string
		if set.WeightKg != nil {
			wr = append(wr, fmt.Sprintf("%.2f kg", *set.WeightKg))
		}
		if set.Reps != nil {
			wr = append(wr, formatNumber(*set.Reps)+" reps")
		}
		parts = append(parts, strings.Join(wr, " x "))
		if set.RPE != nil {
			parts = append(parts, "RPE "+formatNumber(*set.RPE))
		}
	}

	if set.DistanceMeters != nil {
		parts = append(parts, formatNumber(*set.DistanceMeters)+" m")
	}
	if set.DurationSeconds != nil {
		parts = append(parts, formatClock(*set.DurationSeconds))
	}

	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, " | ")
}

// WorkoutDuration is end minus start, or zero when either end is unknown.
func WorkoutDuration(w model.Workout) time.Duration {
	if w.StartTime == nil || w.EndTime == nil {
		return 0
	}
	return w.EndTime.Sub(*w.StartTime)
}

// FormatWorkout renders the full log block for w. The block starts with the
// separator and ends with a blank line.
func FormatWorkout(w model.Workout, loggedAt time.Time, loc *time.Location) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("%s", Separator)
	line("title: %s", w.Title)
	line("logged_at: %s", FormatTimestamp(loggedAt, loc))
	line("start_time: %s", optionalTimestamp(w.StartTime, loc))
	line("end_time: %s", optionalTimestamp(w.EndTime, loc))
	if w.StartTime != nil && w.EndTime != nil {
		line("duration: %s", FormatDurationHMS(WorkoutDuration(w)))
	}
	line("exercises:")

	for _, ex := range w.Exercises {
		line("  - name: %s", ex.Title)
		if ex.Notes != "" {
			line("    notes: %s", ex.Notes)
		}
		line("    sets:")
		for _, set := range ex.Sets {
			line("      - %s", FormatSet(set))
		}
	}

	b.WriteByte('\n')
	return b.String()
}

func optionalTimestamp(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return FormatTimestamp(*t, loc)
}
