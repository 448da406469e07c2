// AngelaMos | 2026
// handler_test.go

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/estateease-api/internal/core"
)

func TestSystemStatsWithoutRedis(t *testing.T) {
	h := NewHandler(HandlerConfig{
		DBStats: func() core.PoolStats {
			return core.PoolStats{MaxPoolSize: 100, Open: 3, InUse: 1}
		},
		DBPing: func(context.Context) error { return nil },
	})
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SystemStatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Database.Healthy)
	require.NotNil(t, resp.Database.Stats)
	assert.Equal(t, int64(3), resp.Database.Stats.Open)
	assert.Nil(t, resp.Redis)
	assert.NotEmpty(t, resp.Runtime.GoVersion)
}

func TestSystemStatsReportsUnhealthyDependencies(t *testing.T) {
	down := func(context.Context) error { return errors.New("down") }
	h := NewHandler(HandlerConfig{DBPing: down, RedisPing: down})
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	var resp SystemStatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Database.Healthy)
	require.NotNil(t, resp.Redis)
	assert.False(t, resp.Redis.Healthy)
	assert.Nil(t, resp.Redis.Stats)
}

func TestRuntimeStatsEndpoint(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(HandlerConfig{}).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats/runtime", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats RuntimeStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Positive(t, stats.NumCPU)
}
