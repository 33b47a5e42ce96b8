package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/tui"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the game until the players quit.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stateRepo, closeStorage := openGameStorage(ctx, log, conf)

	defer func() {
		if err := closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	manager := NewGameManager(logger, stateRepo)
	startup := manager.Load(ctx)

	log.Info("Starting game", "storage", conf.Storage.Driver, "startup", startup.Kind.String())

	model := tui.New(ctx, logger, manager, startup)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	_, runErr := program.Run()

	// the window was closed without going through Quit, keep the board anyway
	if !model.Terminated() {
		manager.Save(context.WithoutCancel(ctx))
	}

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal UI error: %w", runErr)
	}

	log.Info("Game closed", "outcome", manager.Outcome().Kind.String())

	return nil
}

// NewGameManager - assembles the two players, the board and the game once per process.
func NewGameManager(logger *slog.Logger, stateRepo repository.StateRepository) *usecase.GameManager {
	playerX, playerO := entity.NewPlayers()
	game := tictactoe.NewGame(entity.NewBoard(), playerX, playerO)

	return usecase.NewGameManager(logger, stateRepo, game)
}

// OpenStateRepository - picks the storage backend from the config. The returned func releases it.
func OpenStateRepository(ctx context.Context, conf *config.Config) (repository.StateRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.DriverRedis:
		if conf.Storage.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisAddrString := conf.Storage.Redis.GetRedisAddr()

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisStateRepository(redisStorage.Connection, conf.Storage.Redis.Key), redisStorage.Close, nil
	case config.DriverSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteStateRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
	default:
		return repository.NewFileStateRepository(conf.Storage.FilePath), func() error { return nil }, nil
	}
}

// openGameStorage - like OpenStateRepository, but a backend that can't be opened never stops the game.
// The players get a fresh board and every load or save reports the cause to the log.
func openGameStorage(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.StateRepository, func() error) {
	stateRepo, closeStorage, err := OpenStateRepository(ctx, conf)
	if err != nil {
		log.Warn("Storage unavailable, the game will not be kept", "storage", conf.Storage.Driver, "error", err)

		return repository.NewUnavailableStateRepository(err), func() error { return nil }
	}

	return stateRepo, closeStorage
}

// ShowState - prints the saved board and its outcome without starting the UI.
func ShowState(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer) error {
	stateRepo, closeStorage, err := OpenStateRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open storage: %w", err)
	}
	defer func() { _ = closeStorage() }()

	playerX, playerO := entity.NewPlayers()
	game := tictactoe.NewGame(entity.NewBoard(), playerX, playerO)
	outcome := usecase.NewGameManager(logger, stateRepo, game).Load(ctx)

	if _, err = fmt.Fprintln(out, game.Board().String()); err != nil {
		return fmt.Errorf("could not print board: %w", err)
	}

	var status string
	switch outcome.Kind {
	case usecase.KindWin:
		status = fmt.Sprintf("%s won the game", outcome.Winner.Name)
	case usecase.KindDraw:
		status = "Draw"
	default:
		status = fmt.Sprintf("%s to move", outcome.Current.Name)
	}

	if _, err = fmt.Fprintln(out, "\n"+status); err != nil {
		return fmt.Errorf("could not print status: %w", err)
	}

	return nil
}

// ResetState - overwrites the saved board with an empty one.
func ResetState(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	stateRepo, closeStorage, err := OpenStateRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open storage: %w", err)
	}
	defer func() { _ = closeStorage() }()

	if err = stateRepo.Save(ctx, entity.NewBoard().Serialize()); err != nil {
		return fmt.Errorf("could not reset state: %w", err)
	}

	logger.Info("Saved state reset", "storage", conf.Storage.Driver)

	return nil
}
