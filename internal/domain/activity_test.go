package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActivity_MatchesPreferences(t *testing.T) {
	walk := Activity{Kind: KindLeisure, Leisure: &LeisureInfo{Tags: []string{"outdoors", "views"}}}

	assert.True(t, walk.MatchesPreferences(nil), "no preferences means anything goes")
	assert.True(t, walk.MatchesPreferences([]string{"views"}))
	assert.False(t, walk.MatchesPreferences([]string{"culture"}))

	untagged := Activity{Kind: KindLeisure, Leisure: &LeisureInfo{}}
	assert.False(t, untagged.MatchesPreferences([]string{"culture"}))
	assert.True(t, untagged.MatchesPreferences(nil))
}

func TestSharedTagCount(t *testing.T) {
	assert.Equal(t, 2, SharedTagCount([]string{"a", "b", "c"}, []string{"b", "c", "d"}))
	assert.Equal(t, 0, SharedTagCount(nil, []string{"a"}))
	assert.Equal(t, 0, SharedTagCount([]string{"a"}, nil))
}

func TestActivity_AmountFor(t *testing.T) {
	p := validPlan() // 3 nights, 2 passengers

	hotel := Activity{Kind: KindAccommodation, Price: 50,
		Accommodation: &AccommodationInfo{Class: ClassStandard}}
	assert.Equal(t, int64(300), hotel.AmountFor(&p))

	train := Activity{Kind: KindTransport, Price: 100,
		Transport: &TransportInfo{Mode: ModeTrain, StartLocation: "Riga"}}
	assert.Equal(t, int64(200), train.AmountFor(&p))

	tour := Activity{Kind: KindLeisure, Price: 25, Leisure: &LeisureInfo{}}
	assert.Equal(t, int64(50), tour.AmountFor(&p))
}

func TestActivity_Validate(t *testing.T) {
	valid := Activity{
		Name: "train", Kind: KindTransport, Price: 80, DurationMin: 120, Location: "Vienna",
		Transport: &TransportInfo{Mode: ModeTrain, StartLocation: "Riga"},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*Activity)
		wantErr string
	}{
		{"no name", func(a *Activity) { a.Name = "" }, "name"},
		{"negative price", func(a *Activity) { a.Price = -5 }, "price"},
		{"zero duration", func(a *Activity) { a.DurationMin = 0 }, "duration"},
		{"no location", func(a *Activity) { a.Location = "" }, "location"},
		{"missing variant", func(a *Activity) { a.Transport = nil }, "transport"},
		{"bad mode", func(a *Activity) { a.Transport = &TransportInfo{Mode: "ferry", StartLocation: "Riga"} }, "mode"},
		{"bad kind", func(a *Activity) { a.Kind = "holiday" }, "kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			assert.ErrorContains(t, a.Validate(), tt.wantErr)
		})
	}
}

func TestPlanItem_Overlaps(t *testing.T) {
	day := date(2026, 6, 1)
	a := PlanItem{TimeFrom: day.Add(9 * time.Hour), TimeTo: day.Add(11 * time.Hour)}
	b := PlanItem{TimeFrom: day.Add(10 * time.Hour), TimeTo: day.Add(12 * time.Hour)}
	c := PlanItem{TimeFrom: day.Add(11 * time.Hour), TimeTo: day.Add(13 * time.Hour)}

	assert.True(t, a.Overlaps(&b))
	assert.True(t, b.Overlaps(&a))
	assert.False(t, a.Overlaps(&c), "touching boundaries do not overlap")
}
