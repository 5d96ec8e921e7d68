package repository

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type SnapshotWriter interface {
	Write(ctx context.Context, session *entity.GameSession) error
}

type fileSnapshots struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewFileSnapshotWriter - appends a header line and the rendered board of every finished game to path.
func NewFileSnapshotWriter(path string) SnapshotWriter {
	return &fileSnapshots{
		path: path,
		now:  time.Now,
	}
}

func (that *fileSnapshots) Write(ctx context.Context, session *entity.GameSession) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("snapshot skipped: %w", err)
	}

	var builder strings.Builder

	fmt.Fprintf(&builder, "# %s %s %s\n", that.now().UTC().Format(time.RFC3339), session.ID, describeResult(session))
	builder.WriteString(session.Board.Render(entity.EmptyFiller))

	that.mu.Lock()
	defer that.mu.Unlock()

	file, err := os.OpenFile(that.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer file.Close()

	if _, err = file.WriteString(builder.String()); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

func describeResult(session *entity.GameSession) string {
	switch {
	case session.IsDraw():
		return "draw"
	case session.IsFinished():
		return fmt.Sprintf("won by %s (%s) in %ds", session.Winner.Name, session.Winner.Mark, session.Elapsed)
	default:
		return "ongoing"
	}
}
