package cli

import (
	"fmt"

	"github.com/mkarpenko/tripweaver/internal/cli/formatter"
	"github.com/mkarpenko/tripweaver/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the activity catalog",
	}
	cmd.AddCommand(
		newCatalogAddCmd(app),
		newCatalogListCmd(app),
		newCatalogSeedCmd(app),
		newCatalogDeleteCmd(app),
	)
	return cmd
}

func newCatalogAddCmd(app *App) *cobra.Command {
	var (
		kind     string
		price    int64
		duration int
		location string
		mode     string
		from     string
		class    string
		tags     []string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a catalog activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := &domain.Activity{
				Name:        args[0],
				Kind:        domain.ActivityKind(kind),
				Price:       price,
				DurationMin: duration,
				Location:    location,
			}
			switch a.Kind {
			case domain.KindTransport:
				a.Transport = &domain.TransportInfo{
					Mode:          domain.TransportMode(mode),
					StartLocation: from,
				}
			case domain.KindAccommodation:
				a.Accommodation = &domain.AccommodationInfo{
					Class: domain.AccommodationClass(class),
				}
			case domain.KindLeisure:
				a.Leisure = &domain.LeisureInfo{Tags: tags}
			default:
				return fmt.Errorf("unknown kind %q (transport/accommodation/leisure)", kind)
			}

			added, err := app.Catalog.Add(cmd.Context(), a)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s (%s).\n", added.Kind, added.Name, added.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "leisure", "activity kind (transport/accommodation/leisure)")
	cmd.Flags().Int64Var(&price, "price", 0, "price per passenger (per night for accommodation)")
	cmd.Flags().IntVar(&duration, "duration", 60, "duration in minutes")
	cmd.Flags().StringVar(&location, "location", "", "location (destination side for transport)")
	cmd.Flags().StringVar(&mode, "mode", "train", "transport mode")
	cmd.Flags().StringVar(&from, "from", "", "transport start location")
	cmd.Flags().StringVar(&class, "class", "standard", "accommodation class")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "leisure preference tags")
	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Catalog.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCatalog(activities))
			return nil
		},
	}
}

func newCatalogSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in demo catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Catalog.Seed(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d demo activities.\n", n)
			return nil
		},
	}
}

func newCatalogDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <activity-id>",
		Short: "Delete a catalog activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalog.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}
