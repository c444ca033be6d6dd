package climate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestOneYearBefore(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"RegularDate", "2017-08-23", "2016-08-23"},
		{"NewYearsDay", "2017-01-01", "2016-01-01"},
		{"LeapDayClamped", "2016-02-29", "2015-02-28"},
		{"LeapYearTarget", "2017-02-28", "2016-02-28"},
		{"EndOfYear", "2010-12-31", "2009-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, OneYearBefore(in).Format(DateLayout))
		})
	}
}

func TestObservationCutoff(t *testing.T) {
	cutoff, err := ObservationCutoff("2017-08-23")
	require.NoError(t, err)
	assert.Equal(t, "2016-08-23", cutoff)

	_, err = ObservationCutoff("23/08/2017")
	assert.Error(t, err)
}

func TestTemperatureSummary(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		s := TemperatureSummary{}
		assert.True(t, s.IsEmpty())
		assert.True(t, s.IsOrdered())
	})

	t.Run("Ordered", func(t *testing.T) {
		s := TemperatureSummary{Minimum: ptr(58), Average: ptr(74.5), Maximum: ptr(87)}
		assert.False(t, s.IsEmpty())
		assert.True(t, s.IsOrdered())
	})

	t.Run("SingleValue", func(t *testing.T) {
		s := TemperatureSummary{Minimum: ptr(70), Average: ptr(70), Maximum: ptr(70)}
		assert.True(t, s.IsOrdered())
	})

	t.Run("OutOfOrder", func(t *testing.T) {
		s := TemperatureSummary{Minimum: ptr(80), Average: ptr(70), Maximum: ptr(90)}
		assert.False(t, s.IsOrdered())
	})

	t.Run("Partial", func(t *testing.T) {
		s := TemperatureSummary{Minimum: ptr(70)}
		assert.False(t, s.IsOrdered())
	})
}

func TestTemperatureRangeRequest_ResolveEnd(t *testing.T) {
	now := time.Date(2026, time.October, 16, 23, 30, 0, 0, time.UTC)

	open := TemperatureRangeRequest{Start: "2017-01-01"}
	assert.Equal(t, "2026-10-16", open.ResolveEnd(now))

	end := "2017-01-31"
	closed := TemperatureRangeRequest{Start: "2017-01-01", End: &end}
	assert.Equal(t, "2017-01-31", closed.ResolveEnd(now))
}

func TestTemperatureRangeRequest_Normalize(t *testing.T) {
	end := " 2017-01-31 "
	req := TemperatureRangeRequest{Start: " 2017-01-01", End: &end}
	req.Normalize()

	assert.Equal(t, "2017-01-01", req.Start)
	assert.Equal(t, "2017-01-31", *req.End)
}

func TestFlattenObservations(t *testing.T) {
	flat := FlattenObservations([]Observation{
		{Date: "2016-08-23", Temperature: 77},
		{Date: "2016-08-24", Temperature: 77},
		{Date: "2016-08-25", Temperature: 80},
	})

	assert.Equal(t, []interface{}{"2016-08-23", 77.0, "2016-08-24", 77.0, "2016-08-25", 80.0}, flat)
	assert.Empty(t, FlattenObservations(nil))
	assert.NotNil(t, FlattenObservations(nil))
}
