package repository

import (
	"context"
	"sort"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type RecordRepository interface {
	Append(ctx context.Context, record *entity.Record) error
	List(ctx context.Context) ([]*entity.Record, error)
	Top(ctx context.Context, limit int) ([]*entity.Record, error)
}

// sortFastest - orders records by elapsed seconds, older first on a tie.
func sortFastest(records []*entity.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].ElapsedSeconds != records[j].ElapsedSeconds {
			return records[i].ElapsedSeconds < records[j].ElapsedSeconds
		}

		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
}

func limitRecords(records []*entity.Record, limit int) []*entity.Record {
	if limit >= 0 && len(records) > limit {
		return records[:limit]
	}

	return records
}
