package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type postgresRecords struct {
	pool *pgxpool.Pool
}

func NewPostgresRecordRepository(pool *pgxpool.Pool) RecordRepository {
	return &postgresRecords{
		pool: pool,
	}
}

func (that *postgresRecords) Append(ctx context.Context, record *entity.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	query := `INSERT INTO records (player, seconds, created_at) VALUES ($1, $2, $3)`

	if _, err := that.pool.Exec(ctx, query, record.PlayerName, record.ElapsedSeconds, record.CreatedAt); err != nil {
		return fmt.Errorf("can't save record: %w", err)
	}

	return nil
}

func (that *postgresRecords) List(ctx context.Context) ([]*entity.Record, error) {
	query := `SELECT player, seconds, created_at FROM records ORDER BY id`

	return that.query(ctx, query)
}

func (that *postgresRecords) Top(ctx context.Context, limit int) ([]*entity.Record, error) {
	query := `SELECT player, seconds, created_at FROM records ORDER BY seconds, created_at, id LIMIT $1`

	// LIMIT NULL returns every row.
	var bound any
	if limit >= 0 {
		bound = limit
	}

	return that.query(ctx, query, bound)
}

func (that *postgresRecords) query(ctx context.Context, query string, args ...any) ([]*entity.Record, error) {
	rows, err := that.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("can't query records: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Record, error) {
		var record entity.Record
		if err := row.Scan(&record.PlayerName, &record.ElapsedSeconds, &record.CreatedAt); err != nil {
			return nil, err
		}

		record.CreatedAt = record.CreatedAt.UTC()

		return &record, nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't scan records: %w", err)
	}

	return records, nil
}
