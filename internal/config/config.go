package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds process-level settings: where the database lives and how
// output is rendered. Planner behavior (day windows, buffers, gaps) is not
// configured here; it lives in the database settings table so one settings
// snapshot can be read inside each planning transaction.
type Config struct {
	DBPath   string `mapstructure:"db_path"`
	LogLevel string `mapstructure:"log_level"`
}

// Load reads the optional config file at ~/.tripweaver/config.yaml (or the
// file named by TRIPWEAVER_CONFIG) and applies TRIPWEAVER_* environment
// overrides. A missing file yields defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TRIPWEAVER")
	v.AutomaticEnv()
	v.SetDefault("log_level", "info")

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	v.SetDefault("db_path", filepath.Join(home, ".tripweaver", "tripweaver.db"))

	if path := os.Getenv("TRIPWEAVER_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(home, ".tripweaver"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return c, nil
}
