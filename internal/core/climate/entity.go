package climate

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the format of every date stored in and returned by the dataset.
const DateLayout = "2006-01-02"

// Station is a fixed weather-reporting location.
type Station struct {
	ID        int
	Code      string
	Name      string
	Latitude  float64
	Longitude float64
	Elevation float64
}

// Observation is one temperature reading of the most active station.
type Observation struct {
	Date        string
	Temperature float64
}

// TemperatureSummary is the MIN/AVG/MAX of tobs over a date window.
// Every field is nil when the window matched no measurements.
type TemperatureSummary struct {
	Minimum *float64
	Average *float64
	Maximum *float64
}

// IsEmpty reports whether the window matched no rows.
func (s TemperatureSummary) IsEmpty() bool {
	return s.Minimum == nil && s.Average == nil && s.Maximum == nil
}

// IsOrdered reports whether Minimum <= Average <= Maximum. An empty summary is ordered.
func (s TemperatureSummary) IsOrdered() bool {
	if s.IsEmpty() {
		return true
	}
	if s.Minimum == nil || s.Average == nil || s.Maximum == nil {
		return false
	}
	return *s.Minimum <= *s.Average && *s.Average <= *s.Maximum
}

// TemperatureRangeRequest selects the window for a temperature summary.
// A nil End means "today".
type TemperatureRangeRequest struct {
	Start string
	End   *string
}

// Normalize trims surrounding whitespace from the dates.
func (r *TemperatureRangeRequest) Normalize() {
	r.Start = strings.TrimSpace(r.Start)
	if r.End != nil {
		end := strings.TrimSpace(*r.End)
		r.End = &end
	}
}

// ResolveEnd returns End, or today's date in now's location when End is nil.
func (r TemperatureRangeRequest) ResolveEnd(now time.Time) string {
	if r.End != nil {
		return *r.End
	}
	return now.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// OneYearBefore subtracts one calendar year keeping month and day.
// Feb 29 has no counterpart in the prior year and is clamped to Feb 28.
func OneYearBefore(t time.Time) time.Time {
	year, month, day := t.Date()
	if month == time.February && day == 29 {
		day = 28
	}
	return time.Date(year-1, month, day, 0, 0, 0, 0, t.Location())
}

// ObservationCutoff returns the first date of the trailing 12-month window ending at latest.
func ObservationCutoff(latest string) (string, error) {
	t, err := ParseDate(latest)
	if err != nil {
		return "", err
	}
	return OneYearBefore(t).Format(DateLayout), nil
}

// FlattenObservations turns observations into [date1, tobs1, date2, tobs2, ...].
func FlattenObservations(observations []Observation) []interface{} {
	flat := make([]interface{}, 0, len(observations)*2)
	for _, o := range observations {
		flat = append(flat, o.Date, o.Temperature)
	}
	return flat
}
