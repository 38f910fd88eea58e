package vision

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alert-listener-go/internal/config"
)

func testConfig(endpoint string) *config.Config {
	return &config.Config{
		ListenerID:     "listener-test",
		VisionEndpoint: endpoint,
		VisionKey:      "test-key",
		VisionTimeout:  2 * time.Second,
	}
}

func TestAnalyze_ReturnsTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, analyzePath, r.URL.Path)
		assert.Equal(t, "Tags", r.URL.Query().Get("visualFeatures"))
		assert.Equal(t, "test-key", r.Header.Get("Ocp-Apim-Subscription-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tags":[{"name":"person","confidence":0.95},{"name":"outdoor","confidence":0.8}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	analysis, err := client.Analyze(context.Background(), "https://example.com/photo01.jpg")

	require.NoError(t, err)
	require.NotNil(t, analysis)
	require.Len(t, analysis.Tags, 2)
	assert.Equal(t, "person", analysis.Tags[0].Name)
	assert.Equal(t, 0.95, analysis.Tags[0].Confidence)
}

func TestAnalyze_InvalidURLSkipsServiceCall(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	for _, raw := range []string{"not-a-url", "", "/relative/path", "http://"} {
		analysis, err := client.Analyze(context.Background(), raw)
		assert.NoError(t, err, "url %q", raw)
		assert.Nil(t, analysis, "url %q", raw)
	}

	assert.Equal(t, int32(0), calls.Load(), "invalid URLs must never reach the service")
}

func TestAnalyze_ServiceErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal failure", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	analysis, err := client.Analyze(context.Background(), "https://example.com/photo01.jpg")

	assert.Error(t, err)
	assert.Nil(t, analysis)
}

func TestAnalyze_TransportErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(testConfig(server.URL))

	_, err := client.Analyze(context.Background(), "https://example.com/photo01.jpg")

	assert.Error(t, err)
}
