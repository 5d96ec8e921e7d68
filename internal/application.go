package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/console"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/rest"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/tui"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application in the configured mode.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	records, closeRecords, err := newRecordRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer closeRecords()

	var snapshots repository.SnapshotWriter
	if conf.SnapshotPath != "" {
		snapshots = repository.NewFileSnapshotWriter(conf.SnapshotPath)
	}

	newManager := func(presenter usecase.Presenter) *usecase.GameManager {
		return usecase.NewGameManager(logger, records, snapshots, presenter, clock.New(), usecase.Options{
			AutoRestart:    conf.AutoRestart,
			PersistTimeout: conf.PersistTimeout,
		})
	}

	log.Info("Starting application", "mode", conf.Mode, "records", conf.Records.Backend)

	switch conf.Mode {
	case config.ModeRecords:
		return runRecords(ctx, records, conf)
	case config.ModeServer:
		return runServer(ctx, logger, records, newManager, conf)
	default:
		return runTUI(ctx, logger, newManager, conf)
	}
}

func newRecordRepository(ctx context.Context, conf *config.Config) (repository.RecordRepository, func(), error) {
	switch conf.Records.Backend {
	case config.BackendRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisRecordRepository(redisStorage.Connection), func() { _ = redisStorage.Close() }, nil

	case config.BackendSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Records.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLRecordRepository(sqliteStorage.Connection), func() { _ = sqliteStorage.Close() }, nil

	case config.BackendPostgres:
		pgStorage, err := storage.NewPostgresStorage(ctx, conf.Postgres.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to postgres storage: %w", err)
		}

		if err = pgStorage.Init(ctx); err != nil {
			pgStorage.Close()
			return nil, nil, fmt.Errorf("could not init postgres storage: %w", err)
		}

		return repository.NewPostgresRecordRepository(pgStorage.Pool), pgStorage.Close, nil

	default:
		records, err := repository.NewFileRecordRepository(conf.Records.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open record file: %w", err)
		}

		return records, func() {}, nil
	}
}

func runRecords(ctx context.Context, records repository.RecordRepository, conf *config.Config) error {
	top, err := records.Top(ctx, conf.Records.Top)
	if err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}

	return console.PrintLeaderboard(os.Stdout, top)
}

func runTUI(
	ctx context.Context,
	logger *slog.Logger,
	newManager func(usecase.Presenter) *usecase.GameManager,
	conf *config.Config,
) error {
	presenter := tui.NewPresenter()
	manager := newManager(presenter)
	defer manager.Close()

	err := tui.Run(ctx, logger, manager, presenter, tui.Options{
		PlayerOne:   conf.PlayerOne,
		PlayerTwo:   conf.PlayerTwo,
		BoardSize:   conf.BoardSize,
		Leaderboard: conf.Records.Top,
	})
	if err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	return nil
}

func runServer(
	ctx context.Context,
	logger *slog.Logger,
	records repository.RecordRepository,
	newManager func(usecase.Presenter) *usecase.GameManager,
	conf *config.Config,
) error {
	log := logger.With("component", "app")

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		handlers := rest.NewHandlers(logger, records, conf.Records.Top)
		if httpErr := rest.Start(ctx, conf.HTTPPort, handlers); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, func(presenter usecase.Presenter) websocket.GameManager {
			return newManager(presenter)
		}, conf.BoardSize)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
