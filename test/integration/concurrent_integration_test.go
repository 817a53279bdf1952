//go:build integration

package integration

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv, err := newInProcessServer()
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	return srv
}

// TestConcurrent_CardRequests checks that parallel card requests each get a
// complete SVG document.
func TestConcurrent_CardRequests(t *testing.T) {
	srv := startServer(t)
	themes := []string{"radical", "dark", "dracula", "tokyonight", "monokai"}

	const numGoroutines = 50

	var (
		wg           sync.WaitGroup
		successCount int32
	)

	for i := range numGoroutines {
		wg.Add(1)

		go func(id int) {
			defer wg.Done()

			url := srv.URL + "/api?theme=" + themes[id%len(themes)]
			if id%2 == 0 {
				url += "&type=vertical"
			}

			resp, err := srv.Client().Get(url)
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if !assert.NoError(t, err) {
				return
			}

			if assert.Equal(t, http.StatusOK, resp.StatusCode) &&
				assert.True(t, strings.HasSuffix(strings.TrimSpace(string(body)), "</svg>")) {
				atomic.AddInt32(&successCount, 1)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int32(numGoroutines), atomic.LoadInt32(&successCount))
}

// TestConcurrent_RequestIDsAreDistinct checks that every response carries
// its own generated request ID.
func TestConcurrent_RequestIDsAreDistinct(t *testing.T) {
	srv := startServer(t)

	const numGoroutines = 20

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]struct{}, numGoroutines)
	)

	for range numGoroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()

			resp, err := srv.Client().Get(srv.URL + "/api")
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			mu.Lock()
			ids[resp.Header.Get("X-Request-ID")] = struct{}{}
			mu.Unlock()
		}()
	}

	wg.Wait()

	assert.Len(t, ids, numGoroutines)
	assert.NotContains(t, ids, "")
}

// TestConcurrent_ClientCancellation checks that a cancelled client does not
// disturb requests that are still running.
func TestConcurrent_ClientCancellation(t *testing.T) {
	srv := startServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api", http.NoBody)
	require.NoError(t, err)

	_, err = srv.Client().Do(req)
	require.Error(t, err)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(srv.URL + "/api")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
