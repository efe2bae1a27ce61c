package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mkarpenko/tripweaver/internal/planning"
	"github.com/mkarpenko/tripweaver/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) All(ctx context.Context) (map[string]string, error) {
	return s.settings.All(ctx)
}

func (s *settingsService) Set(ctx context.Context, key, value string) error {
	known := false
	for _, k := range planning.SettingKeys {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(planning.SettingKeys, ", "))
	}

	if strings.HasSuffix(key, "_min") {
		if n, err := strconv.Atoi(value); err != nil || n < 0 {
			return fmt.Errorf("setting %s: %q is not a non-negative minute count", key, value)
		}
	} else {
		if _, err := planning.ParseClock(value); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
	}

	return s.settings.Set(ctx, key, value)
}
