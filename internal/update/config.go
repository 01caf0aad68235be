package update

import (
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/habitd/internal/model"
)

const (
	defaultHistoryDays = 70
	defaultWeeksBack   = 6
	defaultMonthsBack  = 3
)

type RuntimeConfig struct {
	DataFilePath      string
	WeekStartsOn      int
	HistoryWindowDays int
	WeeksBack         int
	MonthsBack        int
	RolloverBuffer    int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DataFilePath:      DefaultDataPath(),
		WeekStartsOn:      model.WeekStartsMonday,
		HistoryWindowDays: defaultHistoryDays,
		WeeksBack:         defaultWeeksBack,
		MonthsBack:        defaultMonthsBack,
		RolloverBuffer:    4,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("HABITD_DATA_FILE")); v != "" {
		cfg.DataFilePath = v
	}
	if v, ok := getEnvInt("HABITD_WEEK_STARTS_ON"); ok && (v == model.WeekStartsSunday || v == model.WeekStartsMonday) {
		cfg.WeekStartsOn = v
	}
	if v, ok := getEnvInt("HABITD_HISTORY_DAYS"); ok && v > 0 {
		cfg.HistoryWindowDays = v
	}
	if v, ok := getEnvInt("HABITD_WEEKS_BACK"); ok && v > 0 {
		cfg.WeeksBack = v
	}
	if v, ok := getEnvInt("HABITD_MONTHS_BACK"); ok && v > 0 {
		cfg.MonthsBack = v
	}
	if v, ok := getEnvInt("HABITD_ROLLOVER_BUFFER"); ok && v > 0 {
		cfg.RolloverBuffer = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
