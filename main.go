// Command shobu plays Shobu, the game of four linked 4x4 boards.
//
// It supports these modes:
//  1. "play" (default) - an interactive command loop on stdin/stdout
//  2. "mcp" - an MCP stdio server so an AI agent can play
//  3. "validate" - checks setup files
//  4. "analyze" - summarizes setup files
//  5. "selfplay" - plays strategies against each other
//
// Flags control the setup directory, the starting setup, the strategy used
// for hints and automatic play, and logging.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/shobu/game/config"
	"github.com/wricardo/shobu/game/service"
	"github.com/wricardo/shobu/game/strategy"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "shobu"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Error loading .env file: %v", err)
		}
	}

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the root command and its subcommands.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "play Shobu on four linked boards",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing setup files",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "setup",
				Usage:   "setup to start from (default: classic, or the first setup found)",
				Sources: cli.EnvVars("SHOBU_SETUP"),
			},
			&cli.StringFlag{
				Name:    "strategy",
				Value:   "random",
				Usage:   "strategy for hints and automatic play: " + strings.Join(strategy.Names(), ", ") + " or none",
				Sources: cli.EnvVars("SHOBU_STRATEGY"),
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "random seed for strategies",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: "text",
				Usage: "log format: text or json",
			},
		},
		Before: setupLogging,
		Action: runPlay,
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "play in the terminal",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "auto",
						Value: "none",
						Usage: "side the strategy plays automatically: black, white or none",
					},
				},
				Action: runPlay,
			},
			{
				Name:    "mcp",
				Aliases: []string{"stdio-mcp", "mcp-stdio"},
				Usage:   "serve the game to an AI agent over MCP stdio",
				Action:  runMCP,
			},
			{
				Name:      "validate",
				Usage:     "validate setup files (default: every file in --config-dir)",
				ArgsUsage: "[files...]",
				Action:    runValidate,
			},
			{
				Name:      "analyze",
				Usage:     "summarize setups",
				ArgsUsage: "[setups...]",
				Action:    runAnalyze,
			},
			selfPlayCommand(),
		},
	}
}

// setupLogging configures logrus. Logs go to stderr so stdout stays free
// for the game and the MCP transport.
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	log.SetOutput(os.Stderr)

	level, err := log.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return ctx, fmt.Errorf("invalid log level: %w", err)
	}
	if cmd.Bool("debug") {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	switch cmd.String("log-format") {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return ctx, fmt.Errorf("invalid log format %q: use text or json", cmd.String("log-format"))
	}
	return ctx, nil
}

// initializeServices wires the setup manager, the strategy and the game service.
func initializeServices(configDir, setup, strategyName string, seed int64) (service.GameService, error) {
	configManager, err := config.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	if setup != "" {
		if err := configManager.SetDefault(setup); err != nil {
			return nil, fmt.Errorf("failed to load setup %q: %w", setup, err)
		}
	}

	var strat strategy.Strategy
	if strategyName != "" && strategyName != "none" {
		strat, err = strategy.ByName(strategyName, seed)
		if err != nil {
			return nil, err
		}
	}

	gameService, err := service.NewGameService(configManager, strat)
	if err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}
	return gameService, nil
}

func servicesFromFlags(cmd *cli.Command) (service.GameService, error) {
	return initializeServices(cmd.String("config-dir"), cmd.String("setup"), cmd.String("strategy"), cmd.Int64("seed"))
}
