package planning

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Allocation caps and targets used by the fill and rebalance passes.
const (
	// maxFreePerDay bounds zero-priced leisure items on any single day.
	maxFreePerDay = 2
	// maxFreePerPlan bounds zero-priced leisure items across the whole plan.
	maxFreePerPlan = 6
	// maxPricedPerDay bounds priced leisure items per day during the
	// expand pass. Counting existing items keeps the pass idempotent.
	maxPricedPerDay = 3
	// utilizationPct stops the priced fill pass once total cost reaches
	// this share of the budget, leaving slack for later edits.
	utilizationPct = 95
)

// Settings is an immutable snapshot of the planner configuration, loaded
// once at the start of every operation so a single transaction always sees
// consistent values. Clock fields are minutes from midnight.
type Settings struct {
	OutboundStart int
	CheckinTime   int
	CheckoutTime  int
	ReturnStart   int
	DayStart      int
	DayEnd        int

	BufferAfterOutboundMin int
	BufferBeforeReturnMin  int
	GapMin                 int
}

// DefaultSettings returns the built-in planner configuration.
func DefaultSettings() Settings {
	return Settings{
		OutboundStart:          9 * 60,
		CheckinTime:            15 * 60,
		CheckoutTime:           11 * 60,
		ReturnStart:            18 * 60,
		DayStart:               9 * 60,
		DayEnd:                 21 * 60,
		BufferAfterOutboundMin: 120,
		BufferBeforeReturnMin:  180,
		GapMin:                 30,
	}
}

// SettingKeys lists the persisted configuration keys in canonical order.
var SettingKeys = []string{
	"outbound_start",
	"checkin_time",
	"checkout_time",
	"return_start",
	"default_day_start",
	"default_day_end",
	"buffer_after_outbound_min",
	"buffer_before_return_min",
	"gap_between_activities_min",
}

// ParseSettings builds a Settings snapshot from raw key/value pairs,
// falling back to defaults for absent keys.
func ParseSettings(values map[string]string) (Settings, error) {
	s := DefaultSettings()

	clockFields := map[string]*int{
		"outbound_start":    &s.OutboundStart,
		"checkin_time":      &s.CheckinTime,
		"checkout_time":     &s.CheckoutTime,
		"return_start":      &s.ReturnStart,
		"default_day_start": &s.DayStart,
		"default_day_end":   &s.DayEnd,
	}
	for key, field := range clockFields {
		if raw, ok := values[key]; ok {
			min, err := ParseClock(raw)
			if err != nil {
				return s, fmt.Errorf("setting %s: %w", key, err)
			}
			*field = min
		}
	}

	minuteFields := map[string]*int{
		"buffer_after_outbound_min":  &s.BufferAfterOutboundMin,
		"buffer_before_return_min":   &s.BufferBeforeReturnMin,
		"gap_between_activities_min": &s.GapMin,
	}
	for key, field := range minuteFields {
		if raw, ok := values[key]; ok {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				return s, fmt.Errorf("setting %s: %q is not a non-negative minute count", key, raw)
			}
			*field = n
		}
	}

	return s, nil
}

// ParseClock parses an "HH:MM" value into minutes from midnight.
func ParseClock(raw string) (int, error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%q is not an HH:MM time", raw)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%q is not an HH:MM time", raw)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%q is not an HH:MM time", raw)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// at returns the given calendar day at the given minutes-from-midnight clock.
func at(day time.Time, clockMin int) time.Time {
	return day.Add(time.Duration(clockMin) * time.Minute)
}

// dayOf truncates t to midnight UTC.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
