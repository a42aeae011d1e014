// Command merge2048 starts the desktop merge puzzle.
//
// Running it with no arguments opens the game window using the default board
// preset. The "configs" subcommand lists available presets without opening a
// window. Flags (and matching environment variables, optionally loaded from a
// .env file) select the preset, configs directory, log file, and debug
// logging.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/merge2048/game/config"
	"github.com/wricardo/merge2048/game/engine"
	"github.com/wricardo/merge2048/game/service"
	"github.com/wricardo/merge2048/game/session"
	"github.com/wricardo/merge2048/logger"
	"github.com/wricardo/merge2048/ui"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "merge2048"
)

// AppEnv carries environment-driven defaults for the CLI flags
type AppEnv struct {
	ConfigsDir    string `env:"CONFIGS_DIR" envDefault:"configs"`
	LogFile       string `env:"LOG_FILE" envDefault:"merge2048.log"`
	DefaultPreset string `env:"DEFAULT_PRESET"`
	Debug         bool   `env:"DEBUG"`
}

// loadEnv reads the optional .env file and the process environment
func loadEnv() AppEnv {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var cfg AppEnv
	if err := env.Parse(&cfg); err != nil {
		log.Printf("Warning: Error parsing environment: %v", err)
	}
	if cfg.ConfigsDir == "" {
		cfg.ConfigsDir = "configs"
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "merge2048.log"
	}
	return cfg
}

// newRootCommand builds the CLI with environment-derived flag defaults
func newRootCommand(appEnv AppEnv) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "sliding tile merge puzzle for the desktop",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "configs-dir",
				Value: appEnv.ConfigsDir,
				Usage: "directory containing board presets",
			},
			&cli.StringFlag{
				Name:  "preset",
				Value: appEnv.DefaultPreset,
				Usage: "board preset to play (empty selects the default preset)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Value: appEnv.LogFile,
				Usage: "log file path",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Value: appEnv.Debug,
				Usage: "enable debug logging, including per-move records",
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "spawn randomness seed for reproducible demo runs (0 picks a fresh one)",
			},
		},
		Action: runGame,
		Commands: []*cli.Command{
			{
				Name:   "configs",
				Usage:  "list available board presets",
				Action: listConfigs,
			},
		},
	}
}

func main() {
	cmd := newRootCommand(loadEnv())
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// runGame wires the services, creates a session, and opens the game window
func runGame(ctx context.Context, cmd *cli.Command) error {
	if err := logger.InitLogger(cmd.String("log-file"), cmd.Bool("debug")); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.SyncLogger()

	gameService, sessionManager, err := initializeServices(cmd.String("configs-dir"))
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	if seed := cmd.Int("seed"); seed != 0 {
		rng := rand.New(rand.NewSource(int64(seed)))
		sessionManager.SetEngineBuilder(func(config *engine.GameConfig) (*engine.GameEngine, error) {
			return engine.NewEngineWithRand(config, rng)
		})
		logger.Log.Infow("Using fixed spawn seed", "seed", seed)
	}

	info, err := gameService.CreateSession(ctx, cmd.String("preset"))
	if err != nil {
		return err
	}

	logger.Log.Infow("Starting game",
		"version", Version,
		"session_id", info.ID,
		"config", info.ConfigName)

	// Prune stale sessions in the background while the window is open
	go sessionCleanupRoutine(sessionManager)

	return ui.Run(gameService, info.ID)
}

// listConfigs prints the available presets in the configs directory
func listConfigs(ctx context.Context, cmd *cli.Command) error {
	configManager, err := config.NewManager(cmd.String("configs-dir"))
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	infos, err := configManager.ListConfigs()
	if err != nil {
		return fmt.Errorf("failed to list configs: %w", err)
	}
	if len(infos) == 0 {
		fmt.Println("No presets found.")
		return nil
	}

	fmt.Printf("%-14s %-8s %-8s %s\n", "PRESET", "GRID", "WIN", "DESCRIPTION")
	for _, info := range infos {
		grid := fmt.Sprintf("%dx%d", info.Rows, info.Cols)
		fmt.Printf("%-14s %-8s %-8d %s\n", info.ConfigID, grid, info.WinTile, info.Description)
	}
	return nil
}

// initializeServices wires session and config managers into the game service
func initializeServices(configsDir string) (service.GameService, *session.Manager, error) {
	configManager, err := config.NewManager(configsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	sessionManager := session.NewManager()
	gameService := service.NewGameService(sessionManager, configManager)
	return gameService, sessionManager, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been
// accessed within the retention window
func sessionCleanupRoutine(manager *session.Manager) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		removed := manager.CleanupExpiredSessions(24 * time.Hour)
		if removed > 0 {
			logger.Log.Infow("Cleaned up expired sessions", "count", removed)
		}
	}
}
