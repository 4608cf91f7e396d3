package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tweetsense/sentiment-api/internal/adapter/client"
)

// MockHealthChecker is a mock implementation of service.HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func readyModel() *MockHealthChecker {
	m := new(MockHealthChecker)
	m.On("Ready", mock.Anything).Return(nil)
	return m
}

func newInferenceModel(t *testing.T, status int, body string) *client.InferenceClassifier {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, err := w.Write([]byte(body))
		require.NoError(t, err)
	}))
	t.Cleanup(server.Close)

	c, err := client.NewInferenceClient(server.URL, "swaraj150/improved_finetuned_model", "", true, 5*time.Second)
	require.NoError(t, err)
	return client.NewInferenceClassifier(c)
}

func serveHealth(h *HealthHandler, path string) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)

	req, _ := http.NewRequest("GET", path, http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("healthy when model answers and redis not configured", func(t *testing.T) {
		model := readyModel()
		w := serveHealth(NewHealthHandler(model, nil), "/health")

		assert.Equal(t, http.StatusOK, w.Code)

		var status HealthStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "ok", status.Components["classifier"])
		assert.Equal(t, "not configured", status.Components["redis"])
		model.AssertExpectations(t)
	})

	t.Run("unhealthy when inference endpoint returns 503", func(t *testing.T) {
		model := newInferenceModel(t, http.StatusServiceUnavailable, `{"error":"Model is currently loading","estimated_time":20.0}`)

		w := serveHealth(NewHealthHandler(model, nil), "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var status HealthStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "unhealthy", status.Status)
		assert.Equal(t, "error: inference endpoint returned status 503: Model is currently loading", status.Components["classifier"])
	})

	t.Run("healthy when inference endpoint answers", func(t *testing.T) {
		model := newInferenceModel(t, http.StatusOK, `[[{"label":"LABEL_1","score":0.9}]]`)

		w := serveHealth(NewHealthHandler(model, nil), "/health")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unhealthy without model", func(t *testing.T) {
		w := serveHealth(NewHealthHandler(nil, nil), "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var status HealthStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "error: model not loaded", status.Components["classifier"])
	})

	t.Run("unhealthy when redis unreachable", func(t *testing.T) {
		redisClient := redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 200 * time.Millisecond,
			MaxRetries:  -1,
		})
		defer redisClient.Close()

		w := serveHealth(NewHealthHandler(readyModel(), redisClient), "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var status HealthStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "ok", status.Components["classifier"])
		assert.Contains(t, status.Components["redis"], "error: ")
	})
}

func TestHealthHandler_Ready(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ready when model answers", func(t *testing.T) {
		w := serveHealth(NewHealthHandler(readyModel(), nil), "/ready")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
	})

	t.Run("not ready when inference endpoint returns 503", func(t *testing.T) {
		model := newInferenceModel(t, http.StatusServiceUnavailable, `{"error":"Model is currently loading"}`)

		w := serveHealth(NewHealthHandler(model, nil), "/ready")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t,
			`{"status":"not ready","reason":"inference endpoint returned status 503: Model is currently loading"}`,
			w.Body.String())
	})

	t.Run("not ready without model", func(t *testing.T) {
		w := serveHealth(NewHealthHandler(nil, nil), "/ready")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "model not loaded")
	})
}
