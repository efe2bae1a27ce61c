package cli

import (
	"github.com/mkarpenko/tripweaver/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service interfaces the CLI commands run against.
type App struct {
	Plans    service.PlanService
	Catalog  service.CatalogService
	Settings service.SettingsService
}

// NewRootCmd creates the top-level "tripweaver" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tripweaver",
		Short: "Trip itinerary planner",
		Long: "Tripweaver builds and maintains trip itineraries: transport legs,\n" +
			"accommodation and budget-aware optional activities.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newCatalogCmd(app),
		newSettingsCmd(app),
	)

	return root
}
