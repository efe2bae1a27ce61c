package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mkarpenko/tripweaver/internal/domain"
	"github.com/mkarpenko/tripweaver/internal/planning"
	"github.com/mkarpenko/tripweaver/internal/repository"
	"github.com/mkarpenko/tripweaver/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceHarness struct {
	plans    PlanService
	catalog  CatalogService
	settings SettingsService
	items    repository.PlanItemRepo
}

func newHarness(t *testing.T) *serviceHarness {
	t.Helper()
	database := testutil.NewTestDB(t)
	logger := slog.New(slog.DiscardHandler)

	planRepo := repository.NewSQLitePlanRepo(database)
	itemRepo := repository.NewSQLitePlanItemRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	return &serviceHarness{
		plans:    NewPlanService(planRepo, itemRepo, testutil.NewTestUoW(database), logger),
		catalog:  NewCatalogService(activityRepo, logger),
		settings: NewSettingsService(settingsRepo),
		items:    itemRepo,
	}
}

// seedViennaCatalog loads the catalog every scenario below plans against:
// two train variants, one standard hotel, one priced and one free leisure
// activity.
func (h *serviceHarness) seedViennaCatalog(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for _, a := range []*domain.Activity{
		testutil.NewTransport("Riga", "Vienna", domain.ModeTrain, testutil.WithPrice(100), testutil.WithName("express")),
		testutil.NewTransport("Riga", "Vienna", domain.ModeTrain, testutil.WithPrice(80), testutil.WithName("regional")),
		testutil.NewAccommodation("Vienna", domain.ClassStandard, testutil.WithPrice(50)),
		testutil.NewLeisure("Vienna", nil, testutil.WithPrice(30), testutil.WithName("museum")),
		testutil.NewLeisure("Vienna", nil, testutil.WithPrice(0), testutil.WithName("park")),
	} {
		_, err := h.catalog.Add(ctx, a)
		require.NoError(t, err)
	}
}

func viennaInput() CreatePlanInput {
	return CreatePlanInput{
		Name:               "summer trip",
		StartLocation:      "Riga",
		Destination:        "Vienna",
		StartDate:          testutil.Date(2026, 6, 1),
		EndDate:            testutil.Date(2026, 6, 4),
		Budget:             1000,
		PassengerCount:     2,
		TransportMode:      domain.ModeTrain,
		AccommodationClass: domain.ClassStandard,
	}
}

func TestPlanService_CreatePlan(t *testing.T) {
	h := newHarness(t)
	h.seedViennaCatalog(t)
	ctx := context.Background()

	plan, err := h.plans.CreatePlan(ctx, viennaInput())
	require.NoError(t, err)

	// Mandatory 660 (express out, regional back, 3 hotel nights for two)
	// plus one museum visit per day.
	assert.Equal(t, int64(900), plan.TotalCost)

	items, err := h.plans.ListItems(ctx, plan.ID)
	require.NoError(t, err)

	var transports, accommodations, leisure int
	for _, it := range items {
		switch it.Kind {
		case domain.KindTransport:
			transports++
		case domain.KindAccommodation:
			accommodations++
		case domain.KindLeisure:
			leisure++
		}
	}
	assert.Equal(t, 2, transports)
	assert.Equal(t, 1, accommodations)
	assert.Equal(t, 8, leisure)

	sum, err := h.items.SumAmounts(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.TotalCost, sum, "stored amounts add up to the stored total")
}

func TestPlanService_CreatePlanBudgetTooLowRollsBack(t *testing.T) {
	h := newHarness(t)
	h.seedViennaCatalog(t)
	ctx := context.Background()

	in := viennaInput()
	in.Budget = 500

	_, err := h.plans.CreatePlan(ctx, in)
	require.True(t, planning.IsCode(err, planning.ErrBudgetTooLowForMandatory))

	plans, err := h.plans.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans, "the plan row must not survive the failed creation")
}

func TestPlanService_CreatePlanNoCatalogMatch(t *testing.T) {
	h := newHarness(t)
	h.seedViennaCatalog(t)
	ctx := context.Background()

	in := viennaInput()
	in.Destination = "Oslo"

	_, err := h.plans.CreatePlan(ctx, in)

	assert.True(t, planning.IsCode(err, planning.ErrMandatoryVariantsMissing))
}

func TestPlanService_CreatePlanRejectsInvalidInput(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	in := viennaInput()
	in.EndDate = testutil.Date(2026, 5, 1)
	_, err := h.plans.CreatePlan(ctx, in)
	assert.ErrorContains(t, err, "end date")

	in = viennaInput()
	in.PassengerCount = 0
	_, err = h.plans.CreatePlan(ctx, in)
	assert.ErrorContains(t, err, "passenger count")
}

func TestPlanService_AdjustPassengerCountWithinBudget(t *testing.T) {
	h := newHarness(t)
	h.seedViennaCatalog(t)
	ctx := context.Background()

	plan, err := h.plans.CreatePlan(ctx, viennaInput())
	require.NoError(t, err)

	got, err := h.plans.AdjustPassengerCount(ctx, plan.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, got.PassengerCount)
	assert.LessOrEqual(t, got.TotalCost, got.Budget)

	sum, err := h.items.SumAmounts(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, got.TotalCost, sum)
}

func TestPlanService_AdjustPassengerCountRollsBackOnFailure(t *testing.T) {
	h := newHarness(t)
	h.seedViennaCatalog(t)
	ctx := context.Background()

	plan, err := h.plans.CreatePlan(ctx, viennaInput())
	require.NoError(t, err)
	itemsBefore, err := h.plans.ListItems(ctx, plan.ID)
	require.NoError(t, err)

	// Four passengers need 1320 for the mandatory items alone.
	_, err = h.plans.AdjustPassengerCount(ctx, plan.ID, 4)
	require.True(t, planning.IsCode(err, planning.ErrBudgetTooLowAfterPax))

	stored, err := h.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.PassengerCount)
	assert.Equal(t, int64(900), stored.TotalCost)

	itemsAfter, err := h.plans.ListItems(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, itemsAfter, len(itemsBefore), "no item may change on a failed adjustment")
	for i := range itemsBefore {
		assert.Equal(t, itemsBefore[i], itemsAfter[i])
	}
}

func TestPlanService_AdjustBudgetBelowCost(t *testing.T) {
	h := newHarness(t)
	h.seedViennaCatalog(t)
	ctx := context.Background()

	plan, err := h.plans.CreatePlan(ctx, viennaInput())
	require.NoError(t, err)

	_, err = h.plans.AdjustBudget(ctx, plan.ID, 600)
	require.True(t, planning.IsCode(err, planning.ErrBudgetExceeded))

	stored, err := h.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), stored.Budget)
	assert.Equal(t, int64(900), stored.TotalCost)
}

func TestPlanService_AdjustBudgetIncrease(t *testing.T) {
	h := newHarness(t)
	h.seedViennaCatalog(t)
	ctx := context.Background()

	plan, err := h.plans.CreatePlan(ctx, viennaInput())
	require.NoError(t, err)

	got, err := h.plans.AdjustBudget(ctx, plan.ID, 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), got.Budget)
	assert.LessOrEqual(t, got.TotalCost, got.Budget)

	// Repeating the same adjustment must not change the itinerary.
	again, err := h.plans.AdjustBudget(ctx, plan.ID, 2000)
	require.NoError(t, err)
	assert.Equal(t, got.TotalCost, again.TotalCost)

	items, err := h.plans.ListItems(ctx, plan.ID)
	require.NoError(t, err)
	sum, err := h.items.SumAmounts(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, again.TotalCost, sum)
	assert.NotEmpty(t, items)
}

func TestPlanService_AdjustDatesExtendsStay(t *testing.T) {
	h := newHarness(t)
	h.seedViennaCatalog(t)
	ctx := context.Background()

	plan, err := h.plans.CreatePlan(ctx, viennaInput())
	require.NoError(t, err)

	got, err := h.plans.AdjustDates(ctx, plan.ID, testutil.Date(2026, 6, 1), testutil.Date(2026, 6, 6))
	require.NoError(t, err)

	assert.Equal(t, testutil.Date(2026, 6, 6), got.EndDate)
	assert.LessOrEqual(t, got.TotalCost, got.Budget)

	items, err := h.plans.ListItems(ctx, plan.ID)
	require.NoError(t, err)

	var ret *domain.PlanItem
	for _, it := range items {
		if it.Kind == domain.KindTransport {
			ret = it
		}
		if it.Kind == domain.KindAccommodation {
			assert.Equal(t, testutil.Date(2026, 6, 6).Add(11*time.Hour), it.TimeTo,
				"the stay now checks out on the new end date")
		}
	}
	require.NotNil(t, ret)
	assert.Equal(t, testutil.Date(2026, 6, 6), testutil.Date(ret.TimeFrom.Year(), ret.TimeFrom.Month(), ret.TimeFrom.Day()),
		"the return leg moved to the new last day")

	sum, err := h.items.SumAmounts(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, got.TotalCost, sum)
}

func TestPlanService_AdjustDatesShrinksStay(t *testing.T) {
	h := newHarness(t)
	h.seedViennaCatalog(t)
	ctx := context.Background()

	plan, err := h.plans.CreatePlan(ctx, viennaInput())
	require.NoError(t, err)

	got, err := h.plans.AdjustDates(ctx, plan.ID, testutil.Date(2026, 6, 1), testutil.Date(2026, 6, 2))
	require.NoError(t, err)

	winEnd := testutil.Date(2026, 6, 3)
	items, err := h.plans.ListItems(ctx, plan.ID)
	require.NoError(t, err)
	for _, it := range items {
		assert.False(t, it.TimeTo.After(winEnd), "%s survived outside the shortened window", it.Name)
	}
	assert.Equal(t, int64(580), got.TotalCost)
}

func TestPlanService_AdjustDatesRejectsInvertedRange(t *testing.T) {
	h := newHarness(t)

	_, err := h.plans.AdjustDates(context.Background(), "any",
		testutil.Date(2026, 6, 4), testutil.Date(2026, 6, 1))

	assert.ErrorContains(t, err, "before start date")
}

func TestPlanService_DeleteRemovesItems(t *testing.T) {
	h := newHarness(t)
	h.seedViennaCatalog(t)
	ctx := context.Background()

	plan, err := h.plans.CreatePlan(ctx, viennaInput())
	require.NoError(t, err)

	require.NoError(t, h.plans.Delete(ctx, plan.ID))

	items, err := h.plans.ListItems(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPlanService_SurvivesCatalogDeletion(t *testing.T) {
	h := newHarness(t)
	h.seedViennaCatalog(t)
	ctx := context.Background()

	plan, err := h.plans.CreatePlan(ctx, viennaInput())
	require.NoError(t, err)

	// Drop the leisure records the itinerary references. Adjusting the
	// budget afterwards still reprices the orphaned items from their
	// stored amounts.
	all, err := h.catalog.List(ctx)
	require.NoError(t, err)
	for _, a := range all {
		if a.Kind == domain.KindLeisure {
			require.NoError(t, h.catalog.Delete(ctx, a.ID))
		}
	}

	got, err := h.plans.AdjustBudget(ctx, plan.ID, 1500)
	require.NoError(t, err)
	assert.Equal(t, int64(900), got.TotalCost, "orphaned items keep their amounts")
}
