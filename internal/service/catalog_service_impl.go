package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mkarpenko/tripweaver/internal/domain"
	"github.com/mkarpenko/tripweaver/internal/repository"
)

type catalogService struct {
	activities repository.ActivityRepo
	logger     *slog.Logger
}

func NewCatalogService(activities repository.ActivityRepo, logger *slog.Logger) CatalogService {
	return &catalogService{activities: activities, logger: logger}
}

func (s *catalogService) Add(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := nowUTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.activities.Create(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Debug("activity added", "activity", a.ID, "kind", a.Kind, "name", a.Name)
	return a, nil
}

func (s *catalogService) List(ctx context.Context) ([]*domain.Activity, error) {
	return s.activities.List(ctx)
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	return s.activities.Delete(ctx, id)
}

// Seed loads the built-in demo catalog. Records whose name and kind
// already exist are skipped, so reseeding never duplicates. Returns the
// number of records created.
func (s *catalogService) Seed(ctx context.Context) (int, error) {
	existing, err := s.activities.List(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[string(a.Kind)+"/"+a.Name] = true
	}

	created := 0
	for _, a := range demoCatalog {
		if seen[string(a.Kind)+"/"+a.Name] {
			continue
		}
		record := a
		if _, err := s.Add(ctx, &record); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// demoCatalog is a small fictional catalog for trying the planner out.
var demoCatalog = []domain.Activity{
	{Name: "Morning express", Kind: domain.KindTransport, Price: 90, DurationMin: 150, Location: "Lisbon",
		Transport: &domain.TransportInfo{Mode: domain.ModeTrain, StartLocation: "Porto"}},
	{Name: "Evening express", Kind: domain.KindTransport, Price: 70, DurationMin: 170, Location: "Lisbon",
		Transport: &domain.TransportInfo{Mode: domain.ModeTrain, StartLocation: "Porto"}},
	{Name: "Alfama guesthouse", Kind: domain.KindAccommodation, Price: 45, DurationMin: 60, Location: "Lisbon",
		Accommodation: &domain.AccommodationInfo{Class: domain.ClassStandard}},
	{Name: "Baixa comfort hotel", Kind: domain.KindAccommodation, Price: 85, DurationMin: 60, Location: "Lisbon",
		Accommodation: &domain.AccommodationInfo{Class: domain.ClassComfort}},
	{Name: "Tile museum tour", Kind: domain.KindLeisure, Price: 15, DurationMin: 120, Location: "Lisbon",
		Leisure: &domain.LeisureInfo{Tags: []string{"culture", "history"}}},
	{Name: "Fado night", Kind: domain.KindLeisure, Price: 40, DurationMin: 150, Location: "Lisbon",
		Leisure: &domain.LeisureInfo{Tags: []string{"music", "nightlife"}}},
	{Name: "Tagus boat trip", Kind: domain.KindLeisure, Price: 30, DurationMin: 90, Location: "Lisbon",
		Leisure: &domain.LeisureInfo{Tags: []string{"outdoors", "views"}}},
	{Name: "Miradouro walk", Kind: domain.KindLeisure, Price: 0, DurationMin: 60, Location: "Lisbon",
		Leisure: &domain.LeisureInfo{Tags: []string{"outdoors", "views"}}},
	{Name: "Street art stroll", Kind: domain.KindLeisure, Price: 0, DurationMin: 90, Location: "Lisbon",
		Leisure: &domain.LeisureInfo{Tags: []string{"culture", "art"}}},
}
