package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRecordRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}

	ctx, st := suite.New(t)

	repo := NewRedisRecordRepository(st.Storage)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	// Given: three wins appended in order
	for i, rec := range []*entity.Record{
		{PlayerName: "Alice1", ElapsedSeconds: 8},
		{PlayerName: "Bob22", ElapsedSeconds: 3},
		{PlayerName: "Carol", ElapsedSeconds: 8},
	} {
		rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Append(ctx, rec))
	}

	t.Run("List", func(t *testing.T) {
		// When: List is called
		records, err := repo.List(ctx)

		// Then: the records come back in insertion order
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "Alice1", records[0].PlayerName)
		assert.Equal(t, "Bob22", records[1].PlayerName)
		assert.Equal(t, "Carol", records[2].PlayerName)
		assert.True(t, base.Equal(records[0].CreatedAt))
	})

	t.Run("Top", func(t *testing.T) {
		// When: the fastest records are requested
		top, err := repo.Top(ctx, 2)

		// Then: the fastest win leads and the tie is broken by time
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, "Bob22", top[0].PlayerName)
		assert.Equal(t, "Alice1", top[1].PlayerName)
	})

	t.Run("Invalid", func(t *testing.T) {
		// When: a record without elapsed time is appended
		err := repo.Append(ctx, &entity.Record{PlayerName: "Dave1"})

		// Then: nothing is stored
		require.Error(t, err)

		records, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})
}
