package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

var recordHeader = []string{"player", "seconds", "created_at"}

type fileRecords struct {
	mu   sync.Mutex
	path string
}

// NewFileRecordRepository - opens the CSV record file at path, writing the header if the file is new.
func NewFileRecordRepository(path string) (RecordRepository, error) {
	repo := &fileRecords{path: path}

	if err := repo.init(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (that *fileRecords) init() error {
	file, err := os.OpenFile(that.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open record file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat record file: %w", err)
	}

	if info.Size() > 0 {
		return nil
	}

	writer := csv.NewWriter(file)
	if err = writer.Write(recordHeader); err != nil {
		return fmt.Errorf("failed to write record header: %w", err)
	}

	writer.Flush()

	return writer.Error()
}

func (that *fileRecords) Append(_ context.Context, record *entity.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	file, err := os.OpenFile(that.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open record file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	row := []string{
		record.PlayerName,
		strconv.Itoa(record.ElapsedSeconds),
		record.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if err = writer.Write(row); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return fmt.Errorf("failed to flush record: %w", err)
	}

	return nil
}

func (that *fileRecords) List(_ context.Context) ([]*entity.Record, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.read()
}

func (that *fileRecords) Top(_ context.Context, limit int) ([]*entity.Record, error) {
	that.mu.Lock()
	records, err := that.read()
	that.mu.Unlock()

	if err != nil {
		return nil, err
	}

	sortFastest(records)

	return limitRecords(records, limit), nil
}

func (that *fileRecords) read() ([]*entity.Record, error) {
	file, err := os.Open(that.path)
	if errors.Is(err, os.ErrNotExist) {
		return []*entity.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open record file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(recordHeader)

	records := make([]*entity.Record, 0)

	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record file: %w", err)
		}

		if line == 1 && row[0] == recordHeader[0] {
			continue
		}

		record, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		records = append(records, record)
	}

	return records, nil
}

func parseRecord(row []string) (*entity.Record, error) {
	seconds, err := strconv.Atoi(row[1])
	if err != nil {
		return nil, fmt.Errorf("bad seconds %q: %w", row[1], err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, row[2])
	if err != nil {
		return nil, fmt.Errorf("bad timestamp %q: %w", row[2], err)
	}

	return &entity.Record{
		PlayerName:     row[0],
		ElapsedSeconds: seconds,
		CreatedAt:      createdAt,
	}, nil
}
