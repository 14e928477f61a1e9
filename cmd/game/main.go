package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/alecthomas/kong"

	"mazewalk/internal/logger"
	"mazewalk/pkg/config"
	"mazewalk/pkg/engine"
)

var CLI struct {
	Config      string `help:"Path to configuration file." default:"config.yaml" short:"c" type:"path"`
	LogLevel    string `help:"Override the configured log level (debug, info, warn, error)."`
	WriteConfig bool   `help:"Write the default configuration to standard output and exit."`
}

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	kong.Parse(&CLI,
		kong.Name("mazewalk"),
		kong.Description("a first-person walk through a 3D maze"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.WriteConfig {
		data, err := config.DefaultConfig().Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	cfg, cfgErr := config.LoadConfig(CLI.Config)

	log := logger.NewLogger(cfg.Log.Level)
	if cfg.Log.File != "" {
		multi, err := logger.NewMultiLogger(cfg.Log.Level, cfg.Log.File)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		log = multi
	}
	defer log.Close()

	if _, ok := logger.ParseLevel(cfg.Log.Level); !ok {
		log.Warnf("Unknown log level %q, using info", cfg.Log.Level)
	}
	if CLI.LogLevel != "" && !log.SetLevel(CLI.LogLevel) {
		log.Warnf("Unknown log level %q, keeping %q", CLI.LogLevel, cfg.Log.Level)
	}
	log.Info("Starting maze...")

	switch {
	case errors.Is(cfgErr, fs.ErrNotExist):
		log.Warnf("No configuration at %s, using defaults", CLI.Config)
	case cfgErr != nil:
		log.Fatalf("Failed to load configuration: %v", cfgErr)
	}

	game, err := engine.NewEngine(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize game engine: %v", err)
	}

	log.Info("Engine initialized, starting game loop...")
	game.Run()
	game.Close()
}
