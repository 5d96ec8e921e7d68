package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	recordsKey        = "records"
	fastestRecordsKey = "records:fastest"
)

type redisRecords struct {
	client *redis.Client
}

func NewRedisRecordRepository(client *redis.Client) RecordRepository {
	return &redisRecords{
		client: client,
	}
}

func (that *redisRecords) Append(ctx context.Context, record *entity.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, recordsKey, recordJSON)
		pipe.ZAdd(ctx, fastestRecordsKey, redis.Z{
			Score:  float64(record.ElapsedSeconds),
			Member: recordJSON,
		})

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}

	return nil
}

func (that *redisRecords) List(ctx context.Context) ([]*entity.Record, error) {
	response, err := that.client.LRange(ctx, recordsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return decodeRecords(response)
}

// Top - members with an equal score come back in lexicographic order, so ties are re-sorted by time.
func (that *redisRecords) Top(ctx context.Context, limit int) ([]*entity.Record, error) {
	if limit == 0 {
		return []*entity.Record{}, nil
	}

	response, err := that.client.ZRange(ctx, fastestRecordsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get fastest records: %w", err)
	}

	records, err := decodeRecords(response)
	if err != nil {
		return nil, err
	}

	sortFastest(records)

	return limitRecords(records, limit), nil
}

func decodeRecords(response []string) ([]*entity.Record, error) {
	records := make([]*entity.Record, 0, len(response))

	for _, item := range response {
		var record entity.Record
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}

		records = append(records, &record)
	}

	return records, nil
}
