package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-hotseat/internal"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
)

const logFileMode = 0o644

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	rootCmd, closeLog := newRootCmd()

	err := rootCmd.Execute()
	closeLog()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd - the returned func closes the log file opened by whichever command ran, even a failed one.
func newRootCmd() (*cobra.Command, func()) {
	var (
		configPath string
		statePath  string

		conf   *config.Config
		logger *slog.Logger
		closer func()
	)

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Two players, one terminal, a 3x3 board",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			conf = initConfig(configPath)
			if cmd.Flags().Changed("state") {
				conf.Storage.FilePath = statePath
			}

			logger, closer = initLogger(conf)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := app.RunApp(logger, conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./config.yml)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "state file used by the file storage driver")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the saved board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.ShowState(cmd.Context(), logger, conf, cmd.OutOrStdout())
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Overwrite the saved board with an empty one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.ResetState(cmd.Context(), logger, conf)
		},
	})

	return rootCmd, func() {
		if closer != nil {
			closer()
		}
	}
}

// initialize config.
func initConfig(path string) *config.Config {
	// a missing .env is fine, the environment and config.yml still apply
	_ = godotenv.Load()

	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, "./config.yml")
	}

	return config.MustLoad(path)
}

// initialize logger. The terminal belongs to the UI, so records go to the log file.
// The game does not need its log, so a file that can't be opened only turns logging off.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
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

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)

		return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: level})), func() {}
	}

	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))

	return logger, func() { _ = file.Close() }
}
