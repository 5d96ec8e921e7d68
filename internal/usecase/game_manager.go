package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/stopwatch"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const defaultPersistTimeout = 5 * time.Second

type Options struct {
	// AutoRestart starts a fresh session with the same players and size after a win or a draw.
	AutoRestart    bool
	PersistTimeout time.Duration
}

// GameManager owns the current game session. Moves are serialized; a new game replaces the
// session wholesale. Results are written in the background and never fail a move.
type GameManager struct {
	logger    *slog.Logger
	records   recordRepo
	snapshots snapshotWriter
	presenter Presenter
	clock     clock.Clock
	opts      Options

	mu      sync.Mutex
	session *entity.GameSession
	watch   *stopwatch.Stopwatch
	names   [2]string
	size    int

	pending sync.WaitGroup
}

// NewGameManager - snapshots, presenter and clk may be nil.
func NewGameManager(
	logger *slog.Logger,
	records recordRepo,
	snapshots snapshotWriter,
	presenter Presenter,
	clk clock.Clock,
	opts Options,
) *GameManager {
	if presenter == nil {
		presenter = noopPresenter{}
	}

	if clk == nil {
		clk = clock.New()
	}

	if opts.PersistTimeout <= 0 {
		opts.PersistTimeout = defaultPersistTimeout
	}

	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		records:   records,
		snapshots: snapshots,
		presenter: presenter,
		clock:     clk,
		opts:      opts,
	}
}

// StartGame - validates both names, builds a fresh board and restarts the elapsed-time tracker.
// A blank name is replaced by a generated one. On error the current session is kept as it is.
func (that *GameManager) StartGame(playerOne, playerTwo string, size int) (*entity.GameSession, error) {
	that.mu.Lock()
	session, err := that.startLocked(playerOne, playerTwo, size)
	that.mu.Unlock()

	if err != nil {
		return nil, err
	}

	that.presenter.GameStarted(session)

	return session, nil
}

// Restart - starts a new game with the players and size of the last one.
func (that *GameManager) Restart() (*entity.GameSession, error) {
	that.mu.Lock()
	if that.size == 0 {
		that.mu.Unlock()
		return nil, apperror.ErrNoActiveGame
	}

	session, err := that.startLocked(that.names[0], that.names[1], that.size)
	that.mu.Unlock()

	if err != nil {
		return nil, err
	}

	that.presenter.GameStarted(session)

	return session, nil
}

func (that *GameManager) startLocked(playerOne, playerTwo string, size int) (*entity.GameSession, error) {
	names, err := resolvePlayerNames(playerOne, playerTwo)
	if err != nil {
		return nil, err
	}

	board, err := entity.NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	if that.watch != nil {
		that.watch.Stop()
	}

	session := entity.NewGameSession(pkg.GenerateGameID(), board, names[0], names[1])

	gameID := session.ID
	watch := stopwatch.New(that.clock, func(elapsed int) {
		that.presenter.ElapsedChanged(gameID, elapsed)
	})

	that.session = session
	that.watch = watch
	that.names = names
	that.size = size

	watch.Start()

	that.logger.Info("game started",
		"gameID", session.ID,
		"playerOne", names[0],
		"playerTwo", names[1],
		"size", size,
	)

	return session.Snapshot(), nil
}

func resolvePlayerNames(playerOne, playerTwo string) ([2]string, error) {
	names := [2]string{playerOne, playerTwo}

	for i, name := range names {
		if name == "" {
			names[i] = pkg.GenerateUsername()
			continue
		}

		if err := pkg.ValidateUsername(name); err != nil {
			return names, fmt.Errorf("player %d %q: %w", i+1, name, err)
		}
	}

	return names, nil
}

// MakeMove - places the current player's mark. An occupied cell yields OutcomeRejected and changes
// nothing. A win or a draw stops the tracker, triggers persistence and, with AutoRestart, starts
// the next session before returning.
func (that *GameManager) MakeMove(row, col int) (entity.MoveOutcome, error) {
	that.mu.Lock()

	outcome, err := that.moveLocked(row, col)
	if err != nil {
		that.mu.Unlock()
		return outcome, err
	}

	var finished, next *entity.GameSession

	if outcome.Kind != entity.OutcomeRejected {
		finished = that.session.Snapshot()
		if finished.IsOngoing() {
			finished.Elapsed = that.watch.Elapsed()
		}
	}

	if outcome.IsTerminal() {
		that.persist(finished, outcome)

		if that.opts.AutoRestart {
			next, err = that.startLocked(that.names[0], that.names[1], that.size)
			if err != nil {
				that.logger.Error("failed to restart game", "error", err)
			}
		}
	}

	that.mu.Unlock()

	if finished != nil {
		that.presenter.BoardChanged(finished)
	}

	if outcome.IsTerminal() {
		that.presenter.GameFinished(outcome)
	}

	if next != nil {
		that.presenter.GameStarted(next)
	}

	return outcome, nil
}

func (that *GameManager) moveLocked(row, col int) (entity.MoveOutcome, error) {
	log := that.logger.With("method", "MakeMove")

	session := that.session
	if session == nil {
		return entity.MoveOutcome{}, apperror.ErrNoActiveGame
	}

	if err := session.ConfirmOngoingState(); err != nil {
		return entity.MoveOutcome{}, fmt.Errorf("game %s: %w", session.ID, err)
	}

	player := session.CurrentPlayer()
	outcome := entity.MoveOutcome{GameID: session.ID, Row: row, Col: col}

	result, err := tictactoe.ApplyMove(session.Board, row, col, player.Mark)
	if errors.Is(err, apperror.ErrCellOccupied) {
		log.Debug("move rejected", "gameID", session.ID, "row", row, "col", col)

		outcome.Kind = entity.OutcomeRejected
		outcome.Player = copyPlayer(player)
		outcome.Elapsed = that.watch.Elapsed()

		return outcome, nil
	}

	if err != nil {
		return entity.MoveOutcome{}, fmt.Errorf("failed to make move: %w", err)
	}

	switch result {
	case tictactoe.ResultWin:
		elapsed := that.watch.Stop()
		session.Finish(player, elapsed)

		outcome.Kind = entity.OutcomeWon
		outcome.Player = copyPlayer(player)
		outcome.Elapsed = elapsed

		log.Info("game won", "gameID", session.ID, "winner", player.Name, "elapsed", elapsed)
	case tictactoe.ResultDraw:
		elapsed := that.watch.Stop()
		session.Finish(nil, elapsed)

		outcome.Kind = entity.OutcomeDrawn
		outcome.Elapsed = elapsed

		log.Info("game drawn", "gameID", session.ID, "elapsed", elapsed)
	default:
		session.PassTurn()

		outcome.Kind = entity.OutcomeContinue
		outcome.Player = copyPlayer(session.CurrentPlayer())
		outcome.Elapsed = that.watch.Elapsed()
	}

	return outcome, nil
}

func copyPlayer(player *entity.Player) *entity.Player {
	p := *player
	return &p
}

// persist - records a win and writes the board snapshot in the background.
func (that *GameManager) persist(session *entity.GameSession, outcome entity.MoveOutcome) {
	that.pending.Add(1)

	go func() {
		defer that.pending.Done()

		log := that.logger.With("method", "persist", "gameID", session.ID)

		ctx, cancel := context.WithTimeout(context.Background(), that.opts.PersistTimeout)
		defer cancel()

		if outcome.Kind == entity.OutcomeWon {
			that.appendRecord(ctx, log, outcome)
		}

		if that.snapshots != nil {
			if err := that.snapshots.Write(ctx, session); err != nil {
				log.Error("failed to write board snapshot", "error", err)
				that.presenter.Notify(fmt.Errorf("failed to write board snapshot: %w", err))
			}
		}
	}()
}

func (that *GameManager) appendRecord(ctx context.Context, log *slog.Logger, outcome entity.MoveOutcome) {
	if outcome.Elapsed < 1 {
		log.Info("win under one second is not recorded", "winner", outcome.Player.Name)
		return
	}

	record := entity.NewRecord(outcome.Player.Name, outcome.Elapsed)
	if err := that.records.Append(ctx, record); err != nil {
		log.Error("failed to save record", "error", err)
		that.presenter.Notify(fmt.Errorf("failed to save record: %w", err))
		return
	}

	log.Info("record saved", "player", record.PlayerName, "elapsed", record.ElapsedSeconds)
}

// Session - returns a copy of the current session with the live elapsed time.
func (that *GameManager) Session() (*entity.GameSession, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.session == nil {
		return nil, apperror.ErrNoActiveGame
	}

	snapshot := that.session.Snapshot()
	if snapshot.IsOngoing() {
		snapshot.Elapsed = that.watch.Elapsed()
	}

	return snapshot, nil
}

func (that *GameManager) Records(ctx context.Context) ([]*entity.Record, error) {
	records, err := that.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return records, nil
}

// Leaderboard - returns the limit fastest wins.
func (that *GameManager) Leaderboard(ctx context.Context, limit int) ([]*entity.Record, error) {
	records, err := that.records.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return records, nil
}

// Close - stops the tracker and waits for background writes.
func (that *GameManager) Close() {
	that.mu.Lock()
	if that.watch != nil {
		that.watch.Stop()
	}
	that.mu.Unlock()

	that.pending.Wait()
}
