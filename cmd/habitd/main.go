package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/scheduler"
	"github.com/sandeepkv93/habitd/internal/storage"
	"github.com/sandeepkv93/habitd/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "habitd failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.DefaultRuntimeConfig()
	fileCfg, err := update.LoadFileConfig(update.DefaultConfigPath())
	if err != nil {
		return err
	}
	cfg = update.ApplyFileConfig(cfg, fileCfg)
	cfg = update.RuntimeConfigFromEnv(cfg)

	store, err := storage.NewFileStore(cfg.DataFilePath)
	if err != nil {
		return err
	}

	engine := scheduler.NewEngine(cfg.RolloverBuffer)
	engine.Start()
	defer engine.Stop()

	m, err := update.NewModelWithRollover(store, cfg, engine)
	if err != nil {
		return err
	}

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
