package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const maxTop = 100

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	ListRecords(w http.ResponseWriter, r *http.Request)
	TopRecords(w http.ResponseWriter, r *http.Request)
}

type recordReader interface {
	List(ctx context.Context) ([]*entity.Record, error)
	Top(ctx context.Context, limit int) ([]*entity.Record, error)
}

type handlers struct {
	logger     *slog.Logger
	records    recordReader
	defaultTop int
}

func NewHandlers(logger *slog.Logger, records recordReader, defaultTop int) Handlers {
	return &handlers{
		logger:     logger.With("component", "rest"),
		records:    records,
		defaultTop: defaultTop,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := that.records.List(r.Context())
	if err != nil {
		that.logger.Error("failed to list records", "error", err)
		http.Error(w, "failed to read records", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, records)
}

// TopRecords - ?n= picks the leaderboard length, 1..maxTop.
func (that *handlers) TopRecords(w http.ResponseWriter, r *http.Request) {
	limit := that.defaultTop

	if raw := r.URL.Query().Get("n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTop {
			http.Error(w, "n must be a number between 1 and 100", http.StatusBadRequest)
			return
		}

		limit = n
	}

	records, err := that.records.Top(r.Context(), limit)
	if err != nil {
		that.logger.Error("failed to get leaderboard", "error", err)
		http.Error(w, "failed to read records", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, records)
}

func (that *handlers) writeJSON(w http.ResponseWriter, records []*entity.Record) {
	if records == nil {
		records = []*entity.Record{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(records); err != nil {
		that.logger.Error("failed to encode records", "error", err)
	}
}
