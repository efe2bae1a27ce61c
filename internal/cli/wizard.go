package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mkarpenko/tripweaver/internal/domain"
	"github.com/mkarpenko/tripweaver/internal/service"
)

// runCreateWizard collects plan attributes through an interactive form,
// overwriting whatever the flags provided.
func runCreateWizard(in *service.CreatePlanInput, start, end *string) error {
	var (
		budgetStr = strconv.FormatInt(in.Budget, 10)
		paxStr    = strconv.Itoa(in.PassengerCount)
		prefsStr  = strings.Join(in.Preferences, ",")
		mode      = string(in.TransportMode)
		class     = string(in.AccommodationClass)
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Plan name").Value(&in.Name),
			huh.NewInput().Title("From").Value(&in.StartLocation).
				Validate(required("start location")),
			huh.NewInput().Title("To").Value(&in.Destination).
				Validate(required("destination")),
			huh.NewInput().Title("Start date (YYYY-MM-DD)").Placeholder("2026-09-14").
				Value(start).Validate(validateDate),
			huh.NewInput().Title("End date (YYYY-MM-DD)").Placeholder("2026-09-18").
				Value(end).Validate(validateDate),
		),
		huh.NewGroup(
			huh.NewInput().Title("Budget").Value(&budgetStr).
				Validate(validateNonNegativeInt),
			huh.NewInput().Title("Passengers").Value(&paxStr).
				Validate(validatePositiveInt),
			huh.NewSelect[string]().Title("Transport mode").
				Options(huh.NewOptions("train", "bus", "plane", "car")...).
				Value(&mode),
			huh.NewSelect[string]().Title("Accommodation class").
				Options(huh.NewOptions("hostel", "standard", "comfort", "luxury")...).
				Value(&class),
			huh.NewInput().Title("Preference tags (comma separated, optional)").
				Value(&prefsStr),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	in.Budget, _ = strconv.ParseInt(budgetStr, 10, 64)
	in.PassengerCount, _ = strconv.Atoi(paxStr)
	in.TransportMode = domain.TransportMode(mode)
	in.AccommodationClass = domain.AccommodationClass(class)
	in.Preferences = nil
	for _, p := range strings.Split(prefsStr, ",") {
		if p = strings.TrimSpace(p); p != "" {
			in.Preferences = append(in.Preferences, p)
		}
	}
	return nil
}

func required(name string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateDate(v string) error {
	if _, err := time.Parse(dateLayout, v); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateNonNegativeInt(v string) error {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func validatePositiveInt(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
