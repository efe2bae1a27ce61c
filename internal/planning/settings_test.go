package planning

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettings_Defaults(t *testing.T) {
	s, err := ParseSettings(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestParseSettings_Overrides(t *testing.T) {
	s, err := ParseSettings(map[string]string{
		"outbound_start":             "07:30",
		"default_day_end":            "22:00",
		"gap_between_activities_min": "45",
	})

	require.NoError(t, err)
	assert.Equal(t, 7*60+30, s.OutboundStart)
	assert.Equal(t, 22*60, s.DayEnd)
	assert.Equal(t, 45, s.GapMin)
	assert.Equal(t, 15*60, s.CheckinTime, "untouched keys keep their defaults")
}

func TestParseSettings_RejectsBadValues(t *testing.T) {
	tests := []map[string]string{
		{"outbound_start": "25:00"},
		{"checkin_time": "soon"},
		{"gap_between_activities_min": "-5"},
		{"buffer_after_outbound_min": "2h"},
	}
	for _, values := range tests {
		_, err := ParseSettings(values)
		assert.Error(t, err, "values %v", values)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		raw  string
		min  int
		fail bool
	}{
		{raw: "00:00", min: 0},
		{raw: "09:05", min: 545},
		{raw: "23:59", min: 1439},
		{raw: "24:00", fail: true},
		{raw: "12:60", fail: true},
		{raw: "12", fail: true},
		{raw: "", fail: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.raw), func(t *testing.T) {
			min, err := ParseClock(tt.raw)
			if tt.fail {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.min, min)
		})
	}
}

func TestFormatClock_RoundTrips(t *testing.T) {
	for _, raw := range []string{"00:00", "09:05", "18:30", "23:59"} {
		min, err := ParseClock(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, FormatClock(min))
	}
}
