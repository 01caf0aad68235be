package update

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sandeepkv93/habitd/internal/model"
)

// FileConfig is the optional TOML configuration file.
type FileConfig struct {
	Tracker TrackerConfig `toml:"tracker"`
}

type TrackerConfig struct {
	DataFile     *string `toml:"data-file"`
	WeekStartsOn *int    `toml:"week-starts-on"`
	HistoryDays  *int    `toml:"history-days"`
	WeeksBack    *int    `toml:"weeks-back"`
	MonthsBack   *int    `toml:"months-back"`
}

// LoadFileConfig reads the TOML config at path. A missing file is not an
// error; a present but unparsable one is.
func LoadFileConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ApplyFileConfig overlays file settings onto the runtime config. Env
// overrides are applied after this, so precedence is defaults < file < env.
func ApplyFileConfig(base RuntimeConfig, fc FileConfig) RuntimeConfig {
	cfg := base
	if fc.Tracker.DataFile != nil && *fc.Tracker.DataFile != "" {
		cfg.DataFilePath = *fc.Tracker.DataFile
	}
	if fc.Tracker.WeekStartsOn != nil {
		if v := *fc.Tracker.WeekStartsOn; v == model.WeekStartsSunday || v == model.WeekStartsMonday {
			cfg.WeekStartsOn = v
		}
	}
	if fc.Tracker.HistoryDays != nil && *fc.Tracker.HistoryDays > 0 {
		cfg.HistoryWindowDays = *fc.Tracker.HistoryDays
	}
	if fc.Tracker.WeeksBack != nil && *fc.Tracker.WeeksBack > 0 {
		cfg.WeeksBack = *fc.Tracker.WeeksBack
	}
	if fc.Tracker.MonthsBack != nil && *fc.Tracker.MonthsBack > 0 {
		cfg.MonthsBack = *fc.Tracker.MonthsBack
	}
	return cfg
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "habitd", "config.toml")
}

func DefaultDataPath() string {
	return filepath.Join(XDGDataHome(), "habitd", "habits.json")
}
