package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

func TestPrintLeaderboard(t *testing.T) {
	var buf bytes.Buffer

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	// Given: two records in leaderboard order
	records := []*entity.Record{
		{PlayerName: "Bob22", ElapsedSeconds: 2, CreatedAt: created},
		{PlayerName: "Alice1", ElapsedSeconds: 3, CreatedAt: created},
	}

	// When: they are printed to a non-terminal writer
	err := PrintLeaderboard(&buf, records)

	// Then: one ranked line per record follows the title, without escape codes
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Fastest wins", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  1. Bob22"))
	assert.Contains(t, lines[1], "    2s")
	assert.True(t, strings.HasPrefix(lines[2], "  2. Alice1"))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPrintLeaderboard_Empty(t *testing.T) {
	var buf bytes.Buffer

	// When: there are no records
	err := PrintLeaderboard(&buf, nil)

	// Then: a placeholder line is printed
	require.NoError(t, err)
	assert.Equal(t, "Fastest wins\nno records yet\n", buf.String())
}
