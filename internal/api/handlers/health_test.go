package handlers

import (
	"net/http"
	"testing"

	"studybuddy-backend/internal/testutils"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func setupHealthRouter(t *testing.T, rdb *redis.Client) *testutils.HTTPTestSuite {
	handler := NewHealthHandler(testutils.NewSQLiteDB(t), rdb)

	h := testutils.SetupHTTPTest()
	h.Router.GET("/health", handler.Health)
	h.Router.GET("/health/ready", handler.Ready)
	h.Router.GET("/health/live", handler.Live)
	return h
}

func TestHealth(t *testing.T) {
	h := setupHealthRouter(t, nil)

	recorder := h.MakeRequest(http.MethodGet, "/health", nil)

	var response HealthResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, map[string]string{"database": "healthy"}, response.Services)
}

func TestReady_ReportsUnreachableRedisWithoutFailing(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	h := setupHealthRouter(t, rdb)

	recorder := h.MakeRequest(http.MethodGet, "/health/ready", nil)

	var response struct {
		Ready    bool              `json:"ready"`
		Services map[string]string `json:"services"`
	}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.True(t, response.Ready)
	assert.Equal(t, "ready", response.Services["database"])
	assert.Contains(t, response.Services["redis"], "not ready: ")
}

func TestHealth_DatabaseClosed(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	_ = sqlDB.Close()

	h := testutils.SetupHTTPTest()
	h.Router.GET("/health", NewHealthHandler(db, nil).Health)

	recorder := h.MakeRequest(http.MethodGet, "/health", nil)

	var response HealthResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
	assert.Equal(t, "unhealthy", response.Status)
}

func TestLive(t *testing.T) {
	h := setupHealthRouter(t, nil)

	recorder := h.MakeRequest(http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"alive":true`)
}
