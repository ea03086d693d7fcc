package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(_ context.Context) error { return m.err }

func TestHealthz(t *testing.T) {
	e := newEcho()
	e.GET("/healthz", Healthz)

	rec := doJSON(e, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestReadyz(t *testing.T) {
	e := newEcho()
	e.GET("/readyz", Readyz(mockPinger{}))

	rec := doJSON(e, http.MethodGet, "/readyz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}

func TestReadyzStoreDown(t *testing.T) {
	e := newEcho()
	e.GET("/readyz", Readyz(mockPinger{err: errors.New("conn refused")}))

	rec := doJSON(e, http.MethodGet, "/readyz", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "db_not_ready", resp.Code)
	assert.Equal(t, "issued passes store not ready", resp.Message)
}
