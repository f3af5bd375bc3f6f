package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/patternworks/patterns/pkg/config"
	"github.com/patternworks/patterns/pkg/demo"
	"github.com/patternworks/patterns/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to config YAML file (overrides defaults)")
	noColor := flag.Bool("no-color", false, "Disable colored log output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Level was validated during load; the flag can only turn colors off.
	level, _ := zapcore.ParseLevel(cfg.Logging.Level)
	colors := cfg.Logging.Colors && !*noColor

	logger, err := logging.NewColoredLoggerAt(logging.ComponentGeneral, colors, level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if *configPath != "" {
		logger.ComponentInfo(logging.ComponentGeneral, "Configuration loaded from YAML file",
			zap.String("path", *configPath))
	}

	if err := demo.Run(cfg, os.Stdout, logger); err != nil {
		logger.ComponentError(logging.ComponentDemo, "Demonstration failed", zap.Error(err))
		os.Exit(1)
	}
}
