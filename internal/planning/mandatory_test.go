package planning

import (
	"testing"
	"time"

	"github.com/mkarpenko/tripweaver/internal/domain"
	"github.com/mkarpenko/tripweaver/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardCatalog() *Catalog {
	return NewCatalog([]*domain.Activity{
		testutil.NewTransport("Riga", "Vienna", domain.ModeTrain, testutil.WithPrice(100), testutil.WithName("express")),
		testutil.NewTransport("Riga", "Vienna", domain.ModeTrain, testutil.WithPrice(80), testutil.WithName("regional")),
		testutil.NewAccommodation("Vienna", domain.ClassStandard, testutil.WithPrice(50)),
	})
}

func TestGenerateMandatory_SelectsVariantsAsymmetrically(t *testing.T) {
	s := NewSchedule(*testutil.NewTestPlan(), nil)
	cfg := DefaultSettings()

	err := GenerateMandatory(s, standardCatalog(), cfg)
	require.NoError(t, err)

	require.Len(t, s.Items(), 3)

	outbound := s.Outbound()
	ret := s.Return()
	assert.Equal(t, "express", outbound.Name, "outbound takes the most expensive variant")
	assert.Equal(t, "regional", ret.Name, "return takes the cheapest variant")

	assert.Equal(t, time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC), outbound.TimeFrom)
	assert.Equal(t, time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC), outbound.TimeTo)
	assert.Equal(t, time.Date(2026, 6, 4, 18, 0, 0, 0, time.UTC), ret.TimeFrom)

	assert.Equal(t, int64(200), outbound.Amount)
	assert.Equal(t, int64(160), ret.Amount)
}

func TestGenerateMandatory_AccommodationSpansStay(t *testing.T) {
	s := NewSchedule(*testutil.NewTestPlan(), nil)

	require.NoError(t, GenerateMandatory(s, standardCatalog(), DefaultSettings()))

	accs := s.Accommodations()
	require.Len(t, accs, 1)
	assert.Equal(t, time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC), accs[0].TimeFrom)
	assert.Equal(t, time.Date(2026, 6, 4, 11, 0, 0, 0, time.UTC), accs[0].TimeTo)
	// 50 per night, 3 nights, 2 passengers.
	assert.Equal(t, int64(300), accs[0].Amount)
	assert.Equal(t, int64(660), s.Plan.TotalCost)
}

func TestGenerateMandatory_SingleVariantUsedForBothLegs(t *testing.T) {
	transport := testutil.NewTransport("Riga", "Vienna", domain.ModeTrain, testutil.WithPrice(90))
	catalog := NewCatalog([]*domain.Activity{
		transport,
		testutil.NewAccommodation("Vienna", domain.ClassStandard, testutil.WithPrice(50)),
	})
	s := NewSchedule(*testutil.NewTestPlan(), nil)

	require.NoError(t, GenerateMandatory(s, catalog, DefaultSettings()))

	assert.Equal(t, transport.ID, s.Outbound().ActivityID)
	assert.Equal(t, transport.ID, s.Return().ActivityID)
}

func TestGenerateMandatory_NoMatchingVariants(t *testing.T) {
	tests := []struct {
		name    string
		catalog *Catalog
	}{
		{"empty catalog", NewCatalog(nil)},
		{"no transport", NewCatalog([]*domain.Activity{
			testutil.NewAccommodation("Vienna", domain.ClassStandard),
		})},
		{"no accommodation", NewCatalog([]*domain.Activity{
			testutil.NewTransport("Riga", "Vienna", domain.ModeTrain),
		})},
		{"wrong mode", NewCatalog([]*domain.Activity{
			testutil.NewTransport("Riga", "Vienna", domain.ModeBus),
			testutil.NewAccommodation("Vienna", domain.ClassStandard),
		})},
		{"wrong route", NewCatalog([]*domain.Activity{
			testutil.NewTransport("Riga", "Tallinn", domain.ModeTrain),
			testutil.NewAccommodation("Vienna", domain.ClassStandard),
		})},
		{"wrong class", NewCatalog([]*domain.Activity{
			testutil.NewTransport("Riga", "Vienna", domain.ModeTrain),
			testutil.NewAccommodation("Vienna", domain.ClassLuxury),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSchedule(*testutil.NewTestPlan(), nil)
			err := GenerateMandatory(s, tt.catalog, DefaultSettings())
			assert.True(t, IsCode(err, ErrMandatoryVariantsMissing))
		})
	}
}

func TestGenerateMandatory_BudgetBelowMandatoryFloor(t *testing.T) {
	// Floor: (100+80)*2 passengers + 50*3 nights*2 = 660.
	s := NewSchedule(*testutil.NewTestPlan(testutil.WithBudget(500)), nil)

	err := GenerateMandatory(s, standardCatalog(), DefaultSettings())

	assert.True(t, IsCode(err, ErrBudgetTooLowForMandatory))
	assert.Empty(t, s.Items(), "nothing is placed when the floor check fails")
}

func TestGenerateMandatory_ReturnLegLeavesTravelWindow(t *testing.T) {
	// 400 minutes from the 18:00 return start crosses midnight after the
	// last day.
	catalog := NewCatalog([]*domain.Activity{
		testutil.NewTransport("Riga", "Vienna", domain.ModeTrain, testutil.WithDuration(400)),
		testutil.NewAccommodation("Vienna", domain.ClassStandard),
	})
	s := NewSchedule(*testutil.NewTestPlan(), nil)

	err := GenerateMandatory(s, catalog, DefaultSettings())

	assert.True(t, IsCode(err, ErrMandatoryOutsideWindow))
}

func TestGenerateMandatory_LegsOverlapOnSingleDayTrip(t *testing.T) {
	// The slow outbound leg still runs at 18:00 when the return departs on
	// the same day.
	catalog := NewCatalog([]*domain.Activity{
		testutil.NewTransport("Riga", "Vienna", domain.ModeTrain,
			testutil.WithPrice(100), testutil.WithDuration(580)),
		testutil.NewTransport("Riga", "Vienna", domain.ModeTrain,
			testutil.WithPrice(80), testutil.WithDuration(60)),
		testutil.NewAccommodation("Vienna", domain.ClassStandard),
	})
	day := testutil.Date(2026, 6, 1)
	s := NewSchedule(*testutil.NewTestPlan(testutil.WithDates(day, day)), nil)

	err := GenerateMandatory(s, catalog, DefaultSettings())

	assert.True(t, IsCode(err, ErrMandatoryOverlap))
}

func TestGenerateMandatory_SingleDayTripChargesOneNight(t *testing.T) {
	day := testutil.Date(2026, 6, 1)
	s := NewSchedule(*testutil.NewTestPlan(testutil.WithDates(day, day)), nil)

	require.NoError(t, GenerateMandatory(s, standardCatalog(), DefaultSettings()))

	accs := s.Accommodations()
	require.Len(t, accs, 1)
	assert.Equal(t, int64(100), accs[0].Amount, "a stay without nights still bills one")
}
