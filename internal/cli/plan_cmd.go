package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mkarpenko/tripweaver/internal/cli/formatter"
	"github.com/mkarpenko/tripweaver/internal/domain"
	"github.com/mkarpenko/tripweaver/internal/service"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Create and adjust trip plans",
	}
	cmd.AddCommand(
		newPlanCreateCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanSetDatesCmd(app),
		newPlanSetPaxCmd(app),
		newPlanSetBudgetCmd(app),
		newPlanDeleteCmd(app),
	)
	return cmd
}

func newPlanCreateCmd(app *App) *cobra.Command {
	var (
		name        string
		from, to    string
		start, end  string
		budget      int64
		pax         int
		mode        string
		class       string
		prefs       []string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a plan with a generated itinerary",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.CreatePlanInput{
				Name:               name,
				StartLocation:      from,
				Destination:        to,
				Budget:             budget,
				PassengerCount:     pax,
				Preferences:        prefs,
				TransportMode:      domain.TransportMode(mode),
				AccommodationClass: domain.AccommodationClass(class),
			}

			if interactive {
				if err := runCreateWizard(&in, &start, &end); err != nil {
					return err
				}
			}

			var err error
			if in.StartDate, err = parseDate(start, "--start"); err != nil {
				return err
			}
			if in.EndDate, err = parseDate(end, "--end"); err != nil {
				return err
			}

			plan, err := app.Plans.CreatePlan(cmd.Context(), in)
			if err != nil {
				return err
			}

			items, err := app.Plans.ListItems(cmd.Context(), plan.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(plan, items))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "plan name")
	cmd.Flags().StringVar(&from, "from", "", "start location")
	cmd.Flags().StringVar(&to, "to", "", "destination")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&budget, "budget", 0, "budget ceiling")
	cmd.Flags().IntVar(&pax, "pax", 1, "passenger count")
	cmd.Flags().StringVar(&mode, "mode", "train", "transport mode (train/bus/plane/car)")
	cmd.Flags().StringVar(&class, "class", "standard", "accommodation class (hostel/standard/comfort/luxury)")
	cmd.Flags().StringSliceVar(&prefs, "prefs", nil, "preference tags (comma separated)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "collect attributes interactively")
	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlanList(plans))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <plan-id>",
		Short: "Show a plan's itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd, app, args[0])
			if err != nil {
				return err
			}
			items, err := app.Plans.ListItems(cmd.Context(), plan.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(plan, items))
			return nil
		},
	}
}

func newPlanSetDatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-dates <plan-id> <start> <end>",
		Short: "Move or resize the travel period, rebalancing the itinerary",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd, app, args[0])
			if err != nil {
				return err
			}
			start, err := parseDate(args[1], "start")
			if err != nil {
				return err
			}
			end, err := parseDate(args[2], "end")
			if err != nil {
				return err
			}
			updated, err := app.Plans.AdjustDates(cmd.Context(), plan.ID, start, end)
			if err != nil {
				return err
			}
			return showAfterAdjust(cmd, app, updated)
		},
	}
}

func newPlanSetPaxCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-pax <plan-id> <count>",
		Short: "Change the passenger count, rebalancing the itinerary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd, app, args[0])
			if err != nil {
				return err
			}
			count, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("count %q is not a number", args[1])
			}
			updated, err := app.Plans.AdjustPassengerCount(cmd.Context(), plan.ID, count)
			if err != nil {
				return err
			}
			return showAfterAdjust(cmd, app, updated)
		},
	}
}

func newPlanSetBudgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-budget <plan-id> <amount>",
		Short: "Change the budget ceiling, rebalancing the itinerary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd, app, args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("amount %q is not a number", args[1])
			}
			updated, err := app.Plans.AdjustBudget(cmd.Context(), plan.ID, amount)
			if err != nil {
				return err
			}
			return showAfterAdjust(cmd, app, updated)
		},
	}
}

func newPlanDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <plan-id>",
		Short: "Delete a plan and all its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(cmd, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.Delete(cmd.Context(), plan.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s.\n", plan.DisplayID())
			return nil
		},
	}
}

func showAfterAdjust(cmd *cobra.Command, app *App, plan *domain.Plan) error {
	items, err := app.Plans.ListItems(cmd.Context(), plan.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(plan, items))
	return nil
}

// resolvePlan accepts a full plan ID or an unambiguous prefix.
func resolvePlan(cmd *cobra.Command, app *App, ref string) (*domain.Plan, error) {
	plans, err := app.Plans.List(cmd.Context())
	if err != nil {
		return nil, err
	}
	var match *domain.Plan
	for _, p := range plans {
		if p.ID == ref {
			return p, nil
		}
		if strings.HasPrefix(p.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("plan reference %q is ambiguous", ref)
			}
			match = p
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no plan matches %q", ref)
	}
	return match, nil
}

func parseDate(raw, flag string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required (YYYY-MM-DD)", flag)
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %q is not a YYYY-MM-DD date", flag, raw)
	}
	return t, nil
}
