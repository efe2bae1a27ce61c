package planning

import (
	"testing"

	"github.com/mkarpenko/tripweaver/internal/domain"
	"github.com/mkarpenko/tripweaver/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_TransportVariantsSortedByPrice(t *testing.T) {
	catalog := NewCatalog([]*domain.Activity{
		testutil.NewTransport("Riga", "Vienna", domain.ModeTrain, testutil.WithPrice(120)),
		testutil.NewTransport("Riga", "Vienna", domain.ModeTrain, testutil.WithPrice(60)),
		testutil.NewTransport("Riga", "Vienna", domain.ModeTrain, testutil.WithPrice(90)),
		testutil.NewTransport("Vienna", "Riga", domain.ModeTrain, testutil.WithPrice(10)),
		testutil.NewTransport("Riga", "Vienna", domain.ModeBus, testutil.WithPrice(20)),
	})

	variants := catalog.TransportVariants(testutil.NewTestPlan())

	require.Len(t, variants, 3, "reverse route and other modes are filtered out")
	assert.Equal(t, int64(60), variants[0].Price)
	assert.Equal(t, int64(120), variants[2].Price)
}

func TestCatalog_LeisureCandidatesSplitPricedAndFree(t *testing.T) {
	catalog := NewCatalog([]*domain.Activity{
		testutil.NewLeisure("Vienna", nil, testutil.WithPrice(50), testutil.WithName("b")),
		testutil.NewLeisure("Vienna", nil, testutil.WithPrice(10), testutil.WithName("a")),
		testutil.NewLeisure("Vienna", nil, testutil.WithPrice(0), testutil.WithName("z walk")),
		testutil.NewLeisure("Vienna", nil, testutil.WithPrice(0), testutil.WithName("a walk")),
		testutil.NewLeisure("Salzburg", nil, testutil.WithPrice(0)),
	})

	priced, free := catalog.LeisureCandidates(testutil.NewTestPlan())

	require.Len(t, priced, 2)
	assert.Equal(t, int64(10), priced[0].Price, "priced candidates come cheapest first")
	require.Len(t, free, 2, "other destinations are filtered out")
	assert.Equal(t, "a walk", free[0].Name, "free candidates come in name order")
}

func TestCatalog_Get(t *testing.T) {
	act := testutil.NewLeisure("Vienna", nil)
	catalog := NewCatalog([]*domain.Activity{act})

	assert.Equal(t, act, catalog.Get(act.ID))
	assert.Nil(t, catalog.Get("missing"))
}
