package planning

import (
	"sort"

	"github.com/mkarpenko/tripweaver/internal/domain"
)

// Catalog is a read-only snapshot of catalog activities for the duration of
// one operation.
type Catalog struct {
	activities []*domain.Activity
	byID       map[string]*domain.Activity
}

// NewCatalog indexes the given activities.
func NewCatalog(activities []*domain.Activity) *Catalog {
	c := &Catalog{
		activities: activities,
		byID:       make(map[string]*domain.Activity, len(activities)),
	}
	for _, a := range activities {
		c.byID[a.ID] = a
	}
	return c
}

// Get returns the activity with the given ID, or nil.
func (c *Catalog) Get(id string) *domain.Activity {
	return c.byID[id]
}

// TransportVariants returns transport activities matching the plan's mode
// and route, sorted by ascending price with name and ID as tie-breaks so
// selection is deterministic.
func (c *Catalog) TransportVariants(p *domain.Plan) []*domain.Activity {
	var out []*domain.Activity
	for _, a := range c.activities {
		if a.Kind != domain.KindTransport || a.Transport == nil {
			continue
		}
		if a.Transport.Mode != p.TransportMode {
			continue
		}
		if a.Transport.StartLocation != p.StartLocation || a.Location != p.Destination {
			continue
		}
		out = append(out, a)
	}
	sortByPrice(out)
	return out
}

// AccommodationVariants returns accommodation activities at the plan's
// destination in the plan's class, cheapest first.
func (c *Catalog) AccommodationVariants(p *domain.Plan) []*domain.Activity {
	var out []*domain.Activity
	for _, a := range c.activities {
		if a.Kind != domain.KindAccommodation || a.Accommodation == nil {
			continue
		}
		if a.Location != p.Destination || a.Accommodation.Class != p.AccommodationClass {
			continue
		}
		out = append(out, a)
	}
	sortByPrice(out)
	return out
}

// LeisureCandidates returns leisure activities at the plan's destination
// that intersect the plan's preference tags. A plan with no preferences
// accepts every leisure activity. The result is split into priced
// (cheapest first) and free candidates (name order).
func (c *Catalog) LeisureCandidates(p *domain.Plan) (priced, free []*domain.Activity) {
	for _, a := range c.activities {
		if a.Kind != domain.KindLeisure || a.Location != p.Destination {
			continue
		}
		if !a.MatchesPreferences(p.Preferences) {
			continue
		}
		if a.Price > 0 {
			priced = append(priced, a)
		} else {
			free = append(free, a)
		}
	}
	sortByPrice(priced)
	sort.Slice(free, func(i, j int) bool {
		if free[i].Name != free[j].Name {
			return free[i].Name < free[j].Name
		}
		return free[i].ID < free[j].ID
	})
	return priced, free
}

func sortByPrice(activities []*domain.Activity) {
	sort.Slice(activities, func(i, j int) bool {
		if activities[i].Price != activities[j].Price {
			return activities[i].Price < activities[j].Price
		}
		if activities[i].Name != activities[j].Name {
			return activities[i].Name < activities[j].Name
		}
		return activities[i].ID < activities[j].ID
	})
}
