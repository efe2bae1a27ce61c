package formatter

import (
	"fmt"
	"strings"

	"github.com/mkarpenko/tripweaver/internal/domain"
)

// FormatPlan renders a plan header and its itinerary grouped by day.
func FormatPlan(plan *domain.Plan, items []*domain.PlanItem) string {
	var b strings.Builder

	title := plan.Name
	if title == "" {
		title = fmt.Sprintf("%s → %s", plan.StartLocation, plan.Destination)
	}
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%s  [%s]", title, plan.DisplayID())))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s – %s · %d pax · %s/%s\n",
		plan.StartDate.Format("2006-01-02"), plan.EndDate.Format("2006-01-02"),
		plan.PassengerCount, plan.TransportMode, plan.AccommodationClass))
	b.WriteString(fmt.Sprintf("Budget %d · spent %s · headroom %d\n",
		plan.Budget, costStyle(plan).Render(fmt.Sprintf("%d", plan.TotalCost)), plan.Headroom()))
	if len(plan.Preferences) > 0 {
		b.WriteString(StyleDim.Render("prefs: "+strings.Join(plan.Preferences, ", ")) + "\n")
	}

	var day string
	for _, it := range items {
		d := it.TimeFrom.Format("Mon 2006-01-02")
		if d != day {
			day = d
			b.WriteString("\n" + StyleDim.Render(day) + "\n")
		}
		b.WriteString(fmt.Sprintf("  %s–%s  %s %s",
			it.TimeFrom.Format("15:04"), it.TimeTo.Format("15:04"),
			KindStyle(it.Kind).Render(string(it.Kind)), it.Name))
		if it.Amount > 0 {
			b.WriteString(StyleDim.Render(fmt.Sprintf("  (%d)", it.Amount)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPlanList renders a one-line-per-plan summary table.
func FormatPlanList(plans []*domain.Plan) string {
	if len(plans) == 0 {
		return "No plans yet. Create one with: tripweaver plan create"
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%-10s %-24s %-23s %8s %8s %4s",
		"ID", "TRIP", "DATES", "BUDGET", "COST", "PAX")))
	b.WriteString("\n")
	for _, p := range plans {
		trip := p.Name
		if trip == "" {
			trip = p.StartLocation + " → " + p.Destination
		}
		dates := p.StartDate.Format("2006-01-02") + "…" + p.EndDate.Format("2006-01-02")
		b.WriteString(fmt.Sprintf("%-10s %-24s %-23s %8d %8d %4d\n",
			p.DisplayID(), truncate(trip, 24), dates, p.Budget, p.TotalCost, p.PassengerCount))
	}
	return b.String()
}

// FormatCatalog renders catalog activities grouped by kind.
func FormatCatalog(activities []*domain.Activity) string {
	if len(activities) == 0 {
		return "Catalog is empty. Try: tripweaver catalog seed"
	}

	var b strings.Builder
	var kind domain.ActivityKind
	for _, a := range activities {
		if a.Kind != kind {
			kind = a.Kind
			b.WriteString(KindStyle(kind).Render(strings.ToUpper(string(kind))) + "\n")
		}
		detail := ""
		switch kind {
		case domain.KindTransport:
			detail = fmt.Sprintf("%s %s → %s", a.Transport.Mode, a.Transport.StartLocation, a.Location)
		case domain.KindAccommodation:
			detail = fmt.Sprintf("%s · %s", a.Location, a.Accommodation.Class)
		case domain.KindLeisure:
			detail = a.Location
			if len(a.Leisure.Tags) > 0 {
				detail += " · " + strings.Join(a.Leisure.Tags, ",")
			}
		}
		b.WriteString(fmt.Sprintf("  %-8s %-26s %6d  %4d min  %s\n",
			a.ID[:8], truncate(a.Name, 26), a.Price, a.DurationMin, StyleDim.Render(detail)))
	}
	return b.String()
}

func costStyle(p *domain.Plan) interface{ Render(...string) string } {
	if p.Headroom() <= p.Budget/20 {
		return StyleYellow
	}
	return StyleGreen
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
