package update

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/habitd/internal/model"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.WeekStartsOn != model.WeekStartsMonday {
		t.Fatalf("WeekStartsOn = %d, want Monday", cfg.WeekStartsOn)
	}
	if cfg.HistoryWindowDays != defaultHistoryDays {
		t.Fatalf("HistoryWindowDays = %d, want %d", cfg.HistoryWindowDays, defaultHistoryDays)
	}
	if cfg.DataFilePath == "" {
		t.Fatal("DataFilePath is empty")
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("HABITD_DATA_FILE", "/tmp/habits-test.json")
	t.Setenv("HABITD_WEEK_STARTS_ON", "0")
	t.Setenv("HABITD_HISTORY_DAYS", "140")
	t.Setenv("HABITD_WEEKS_BACK", "12")
	t.Setenv("HABITD_MONTHS_BACK", "6")
	t.Setenv("HABITD_ROLLOVER_BUFFER", "8")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DataFilePath != "/tmp/habits-test.json" {
		t.Fatalf("DataFilePath = %q", cfg.DataFilePath)
	}
	if cfg.WeekStartsOn != model.WeekStartsSunday {
		t.Fatalf("WeekStartsOn = %d, want Sunday", cfg.WeekStartsOn)
	}
	if cfg.HistoryWindowDays != 140 || cfg.WeeksBack != 12 || cfg.MonthsBack != 6 {
		t.Fatalf("windows = %d/%d/%d", cfg.HistoryWindowDays, cfg.WeeksBack, cfg.MonthsBack)
	}
	if cfg.RolloverBuffer != 8 {
		t.Fatalf("RolloverBuffer = %d", cfg.RolloverBuffer)
	}
}

func TestRuntimeConfigFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv("HABITD_WEEK_STARTS_ON", "3")
	t.Setenv("HABITD_HISTORY_DAYS", "banana")
	t.Setenv("HABITD_WEEKS_BACK", "-2")

	base := DefaultRuntimeConfig()
	cfg := RuntimeConfigFromEnv(base)
	if cfg.WeekStartsOn != base.WeekStartsOn {
		t.Fatalf("WeekStartsOn changed to %d on invalid value", cfg.WeekStartsOn)
	}
	if cfg.HistoryWindowDays != base.HistoryWindowDays {
		t.Fatalf("HistoryWindowDays changed to %d on invalid value", cfg.HistoryWindowDays)
	}
	if cfg.WeeksBack != base.WeeksBack {
		t.Fatalf("WeeksBack changed to %d on negative value", cfg.WeeksBack)
	}
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	cfg, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file: %v", err)
	}
	if cfg.Tracker.DataFile != nil {
		t.Fatal("expected zero config for missing file")
	}
}

func TestLoadFileConfigBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tracker = {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("expected decode error for malformed toml")
	}
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[tracker]\ndata-file = \"/from/file.json\"\nweek-starts-on = 0\nhistory-days = 35\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := ApplyFileConfig(DefaultRuntimeConfig(), fc)
	if cfg.DataFilePath != "/from/file.json" {
		t.Fatalf("file layer not applied, DataFilePath = %q", cfg.DataFilePath)
	}
	if cfg.WeekStartsOn != model.WeekStartsSunday || cfg.HistoryWindowDays != 35 {
		t.Fatalf("file layer values = %d/%d", cfg.WeekStartsOn, cfg.HistoryWindowDays)
	}

	// Env wins over the file.
	t.Setenv("HABITD_DATA_FILE", "/from/env.json")
	cfg = RuntimeConfigFromEnv(cfg)
	if cfg.DataFilePath != "/from/env.json" {
		t.Fatalf("env layer not applied, DataFilePath = %q", cfg.DataFilePath)
	}
	if cfg.HistoryWindowDays != 35 {
		t.Fatalf("env layer clobbered file value, HistoryWindowDays = %d", cfg.HistoryWindowDays)
	}
}
