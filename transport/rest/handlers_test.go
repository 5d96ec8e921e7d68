package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-hotseat/mocks/usecase"
)

func newServer(t *testing.T, records recordReader) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	server := httptest.NewServer(NewRouter(NewHandlers(logger, records, 10)))
	t.Cleanup(server.Close)

	return server
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(url) //nolint: noctx // test request
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

func TestPing(t *testing.T) {
	server := newServer(t, mockedUseCase.NewMockrecordRepo(t))

	// When: /ping is requested
	resp, body := get(t, server.URL+"/ping")

	// Then: pong is returned
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestListRecords(t *testing.T) {
	records := mockedUseCase.NewMockrecordRepo(t)
	server := newServer(t, records)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	// Given: one stored record
	records.EXPECT().List(mock.Anything).Return([]*entity.Record{
		{PlayerName: "Alice1", ElapsedSeconds: 3, CreatedAt: created},
	}, nil).Once()

	// When: /records is requested
	resp, body := get(t, server.URL+"/records")

	// Then: the record is returned as JSON
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got []*entity.Record
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Alice1", got[0].PlayerName)
	assert.Equal(t, 3, got[0].ElapsedSeconds)
	assert.True(t, created.Equal(got[0].CreatedAt))
}

func TestListRecords_Empty(t *testing.T) {
	records := mockedUseCase.NewMockrecordRepo(t)
	server := newServer(t, records)

	records.EXPECT().List(mock.Anything).Return(nil, nil).Once()

	// When: the store is empty
	resp, body := get(t, server.URL+"/records")

	// Then: an empty array is returned
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(body))
}

func TestListRecords_StoreFailure(t *testing.T) {
	records := mockedUseCase.NewMockrecordRepo(t)
	server := newServer(t, records)

	records.EXPECT().List(mock.Anything).Return(nil, errors.New("disk gone")).Once()

	// When: the store fails
	resp, _ := get(t, server.URL+"/records")

	// Then: 500 is returned
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestTopRecords(t *testing.T) {
	t.Run("default length", func(t *testing.T) {
		records := mockedUseCase.NewMockrecordRepo(t)
		server := newServer(t, records)

		records.EXPECT().Top(mock.Anything, 10).Return([]*entity.Record{}, nil).Once()

		resp, body := get(t, server.URL+"/records/top")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, "[]", string(body))
	})

	t.Run("explicit length", func(t *testing.T) {
		records := mockedUseCase.NewMockrecordRepo(t)
		server := newServer(t, records)

		records.EXPECT().Top(mock.Anything, 3).Return([]*entity.Record{
			{PlayerName: "Bob22", ElapsedSeconds: 2},
		}, nil).Once()

		resp, body := get(t, server.URL+"/records/top?n=3")

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []*entity.Record
		require.NoError(t, json.Unmarshal(body, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Bob22", got[0].PlayerName)
	})

	for _, n := range []string{"zero", "0", "-2", "101"} {
		t.Run("bad length "+n, func(t *testing.T) {
			server := newServer(t, mockedUseCase.NewMockrecordRepo(t))

			resp, _ := get(t, server.URL+"/records/top?n="+n)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	server := newServer(t, mockedUseCase.NewMockrecordRepo(t))

	// When: a record is posted
	resp, err := http.Post(server.URL+"/records", "application/json", nil) //nolint: noctx // test request
	require.NoError(t, err)
	defer resp.Body.Close()

	// Then: the route refuses it
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRouter_CORS(t *testing.T) {
	server := newServer(t, mockedUseCase.NewMockrecordRepo(t))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/ping", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
