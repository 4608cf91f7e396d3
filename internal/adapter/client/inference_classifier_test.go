package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tweetsense/sentiment-api/internal/infrastructure/config"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, err := w.Write([]byte(body))
		require.NoError(t, err)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestInferenceClassifier_Classify(t *testing.T) {
	t.Run("returns highest scoring prediction", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK,
			`[[{"label":"LABEL_0","score":0.2},{"label":"LABEL_1","score":0.7},{"label":"LABEL_2","score":0.1}]]`)

		client, err := NewInferenceClient(server.URL, testModelID, "", false, 5*time.Second)
		require.NoError(t, err)
		classifier := NewInferenceClassifier(client)

		result, err := classifier.Classify(context.Background(), "some text")

		require.NoError(t, err)
		assert.Equal(t, "LABEL_1", result.Label)
		assert.Equal(t, 0.7, result.Score)
	})

	t.Run("empty prediction list returns error", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, `[[]]`)

		client, err := NewInferenceClient(server.URL, testModelID, "", false, 5*time.Second)
		require.NoError(t, err)
		classifier := NewInferenceClassifier(client)

		result, err := classifier.Classify(context.Background(), "text")

		assert.ErrorIs(t, err, ErrNoPredictions)
		assert.Nil(t, result)
	})

	t.Run("server error returns error", func(t *testing.T) {
		server := newTestServer(t, http.StatusBadRequest, `{"error":"Input is too long"}`)

		client, err := NewInferenceClient(server.URL, testModelID, "", false, 5*time.Second)
		require.NoError(t, err)
		classifier := NewInferenceClassifier(client)

		result, err := classifier.Classify(context.Background(), "text")

		assert.EqualError(t, err, "inference endpoint returned status 400: Input is too long")
		assert.Nil(t, result)
	})
}

func TestLoadClassifier(t *testing.T) {
	t.Run("warms up the model once", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&calls, 1)
			_, err := w.Write([]byte(`[{"label":"LABEL_1","score":0.6}]`))
			require.NoError(t, err)
		}))
		defer server.Close()

		classifier, err := LoadClassifier(context.Background(), &config.ModelConfig{
			BaseURL: server.URL,
			ID:      testModelID,
			Timeout: 5 * time.Second,
			Warmup:  true,
		})

		require.NoError(t, err)
		assert.NotNil(t, classifier)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("skips warmup when disabled", func(t *testing.T) {
		classifier, err := LoadClassifier(context.Background(), &config.ModelConfig{
			BaseURL: "http://127.0.0.1:1",
			ID:      testModelID,
			Timeout: time.Second,
		})

		require.NoError(t, err)
		assert.NotNil(t, classifier)
	})

	t.Run("fails when model cannot be loaded", func(t *testing.T) {
		server := newTestServer(t, http.StatusNotFound, `{"error":"Model not found"}`)

		classifier, err := LoadClassifier(context.Background(), &config.ModelConfig{
			BaseURL: server.URL,
			ID:      testModelID,
			Timeout: 5 * time.Second,
			Warmup:  true,
		})

		require.Error(t, err)
		assert.Nil(t, classifier)
		assert.Contains(t, err.Error(), "failed to load model "+testModelID)
		assert.Contains(t, err.Error(), "Model not found")
	})
}
