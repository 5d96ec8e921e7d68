package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type sqlRecords struct {
	conn *sql.DB
}

// NewSQLRecordRepository - records kept in the sqlite table created by storage.Storage.Init.
func NewSQLRecordRepository(conn *sql.DB) RecordRepository {
	return &sqlRecords{
		conn: conn,
	}
}

func (that *sqlRecords) Append(ctx context.Context, record *entity.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	query := `INSERT INTO records (player, seconds, created_at) VALUES (?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, record.PlayerName, record.ElapsedSeconds, record.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("can't save record: %w", err)
	}

	return nil
}

func (that *sqlRecords) List(ctx context.Context) ([]*entity.Record, error) {
	query := `SELECT player, seconds, created_at FROM records ORDER BY rowid`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't list records: %w", err)
	}

	return scanRecords(rows)
}

func (that *sqlRecords) Top(ctx context.Context, limit int) ([]*entity.Record, error) {
	query := `SELECT player, seconds, created_at FROM records ORDER BY seconds, created_at, rowid LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't get fastest records: %w", err)
	}

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]*entity.Record, error) {
	defer rows.Close()

	records := make([]*entity.Record, 0)

	for rows.Next() {
		var (
			record    entity.Record
			createdAt int64
		)

		if err := rows.Scan(&record.PlayerName, &record.ElapsedSeconds, &createdAt); err != nil {
			return nil, fmt.Errorf("can't scan record: %w", err)
		}

		record.CreatedAt = time.Unix(0, createdAt).UTC()
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read records: %w", err)
	}

	return records, nil
}
