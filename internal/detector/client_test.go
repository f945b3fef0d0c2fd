package detector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSidecar(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

// newTestClient builds a client without the background startup health check so
// tests control every request the sidecar sees.
func newTestClient(url string) *Client {
	return &Client{
		baseURL:         url,
		modelName:       "test-model",
		http:            &http.Client{Timeout: time.Second},
		maxRetryBackoff: 30 * time.Second,
	}
}

func TestClientDetectDecodesResponse(t *testing.T) {
	var gotConf string
	srv := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/detect" {
			http.NotFound(w, r)
			return
		}
		require.NoError(t, r.ParseMultipartForm(10<<20))
		gotConf = r.FormValue("conf_threshold")

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		file.Close()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"detections":[{"label":"lion","confidence":0.91,"bbox":[10,20,110,220]}],"model":"test"}`))
	})

	c := newTestClient(srv.URL)
	dets, err := c.Detect(context.Background(), []byte("jpeg-bytes"), 0.25)
	require.NoError(t, err)

	require.Len(t, dets, 1)
	assert.Equal(t, "lion", dets[0].Label)
	assert.Equal(t, 0.91, dets[0].Confidence)
	assert.Equal(t, []float64{10, 20, 110, 220}, dets[0].BBox)
	assert.Equal(t, "0.25", gotConf)
	assert.True(t, c.IsHealthy())
}

func TestClientDetectNonOKStatus(t *testing.T) {
	srv := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	})

	c := newTestClient(srv.URL)
	_, err := c.Detect(context.Background(), []byte("jpeg-bytes"), 0.25)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.False(t, c.IsHealthy())
}

func TestClientBackoffAfterFailure(t *testing.T) {
	calls := 0
	srv := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "down", http.StatusInternalServerError)
	})

	c := newTestClient(srv.URL)

	_, err := c.Detect(context.Background(), []byte("x"), 0.25)
	require.Error(t, err)

	// Second attempt lands inside the 1s backoff window and is refused
	// without reaching the sidecar.
	_, err = c.Detect(context.Background(), []byte("x"), 0.25)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backoff")
	assert.Equal(t, 1, calls)
}

func TestClientRecoversAfterSuccess(t *testing.T) {
	healthy := false
	srv := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			http.Error(w, "down", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"detections":[]}`))
	})

	c := newTestClient(srv.URL)
	c.maxRetryBackoff = 0

	_, err := c.Detect(context.Background(), []byte("x"), 0.25)
	require.Error(t, err)

	healthy = true

	// Backoff capped at zero, so the retry goes through immediately.
	dets, err := c.Detect(context.Background(), []byte("x"), 0.25)
	require.NoError(t, err)
	assert.Empty(t, dets)
	assert.True(t, c.IsHealthy())
}

func TestClientHealthCheck(t *testing.T) {
	srv := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthz" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	})

	c := newTestClient(srv.URL)
	require.NoError(t, c.HealthCheck(context.Background()))
	assert.True(t, c.IsHealthy())
	assert.Equal(t, "test-model", c.Name())
}

func TestClientDetectContextCanceled(t *testing.T) {
	srv := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"detections":[]}`))
	})

	c := newTestClient(srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Detect(ctx, []byte("x"), 0.25)
	require.Error(t, err)
}
