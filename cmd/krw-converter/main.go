package main

import (
	"fmt"
	"os"
	"runtime"

	"krw-converter/internal/app"
	"krw-converter/internal/config"
	"krw-converter/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.AppName, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.LogLevel, cfg.JSONLogs)
	log.Debug("Main", "runtime", map[string]interface{}{
		"go_version": runtime.Version(),
		"num_cpu":    runtime.NumCPU(),
	})

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("Main", err, nil)
		return err
	}

	return application.Run()
}
