package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
)

var (
	configPath string

	conf   *config.Config
	logger *slog.Logger

	rootCmd = &cobra.Command{
		Use:           "tictactoe-ai",
		Short:         "Optimal tic-tac-toe moves for any reachable position",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			var err error
			if conf, err = initConfig(configPath); err != nil {
				return err
			}
			logger = initLogger(conf)
			return nil
		},
	}
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to config.yml")
	rootCmd.AddCommand(serveCmd, newDecideCmd(), newEnumerateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return filepath.Join(baseDir, "./config.yml")
}

// initialize config, falling back to defaults and environment when there is no file.
func initConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config.Load()
	}

	return config.MustLoad(path), nil
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
