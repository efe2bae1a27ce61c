package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validPlan() Plan {
	return Plan{
		ID:                 "7f9a2b1c-0000-0000-0000-000000000000",
		StartLocation:      "Riga",
		Destination:        "Vienna",
		StartDate:          date(2026, 6, 1),
		EndDate:            date(2026, 6, 4),
		Budget:             1000,
		PassengerCount:     2,
		TransportMode:      ModeTrain,
		AccommodationClass: ClassStandard,
	}
}

func TestPlan_Nights(t *testing.T) {
	p := validPlan()
	assert.Equal(t, 3, p.Nights())

	p.EndDate = p.StartDate
	assert.Equal(t, 1, p.Nights(), "a same-day trip still bills one night")
}

func TestPlan_Days(t *testing.T) {
	p := validPlan()
	assert.Equal(t, 4, p.Days())

	p.EndDate = p.StartDate
	assert.Equal(t, 1, p.Days())
}

func TestPlan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Plan)
		wantErr string
	}{
		{"valid", func(p *Plan) {}, ""},
		{"no destination", func(p *Plan) { p.Destination = "" }, "destination"},
		{"no start location", func(p *Plan) { p.StartLocation = "" }, "start location"},
		{"inverted dates", func(p *Plan) { p.EndDate = date(2026, 5, 1) }, "before start date"},
		{"negative budget", func(p *Plan) { p.Budget = -1 }, "budget"},
		{"zero passengers", func(p *Plan) { p.PassengerCount = 0 }, "passenger count"},
		{"bad mode", func(p *Plan) { p.TransportMode = "zeppelin" }, "transport mode"},
		{"bad class", func(p *Plan) { p.AccommodationClass = "palace" }, "accommodation class"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPlan()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPlan_DisplayID(t *testing.T) {
	p := validPlan()
	assert.Equal(t, "7f9a2b1c", p.DisplayID())

	p.ID = "short"
	assert.Equal(t, "short", p.DisplayID())
}
