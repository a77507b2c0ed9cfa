package scan

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybersherlock/cybersherlock/internal/platform"
)

func specsFor(baseURL string, n int) []platform.Spec {
	specs := make([]platform.Spec, 0, n)
	for i := 0; i < n; i++ {
		specs = append(specs, platform.Spec{
			Name:        fmt.Sprintf("P%d", i+1),
			URLTemplate: fmt.Sprintf("%s/p%d/{}", baseURL, i+1),
			Mode:        platform.ModeStatusCode,
		})
	}
	return specs
}

func collectAll(ch <-chan Result) map[string]Result {
	out := make(map[string]Result)
	for r := range ch {
		out[r.Platform] = r
	}
	return out
}

func TestScanProducesOneResultPerPlatform(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	for _, concurrency := range []int{1, 3, 50} {
		specs := specsFor(srv.URL, 9)
		s := NewScanner(srv.Client(), Config{Concurrency: concurrency, Timeout: 5 * time.Second}, nil)

		results := collectAll(s.Scan(context.Background(), "hydra", specs))

		require.Len(t, results, len(specs), "concurrency %d", concurrency)
		for _, spec := range specs {
			r, ok := results[spec.Name]
			require.True(t, ok, "missing result for %s", spec.Name)
			assert.Equal(t, OutcomeFound, r.Outcome)
			assert.Equal(t, http.StatusOK, r.HTTPStatus)
		}
	}
}

func TestScanAllFoundScenario(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/status/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/marker/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "welcome to the profile page")
	})
	mux.HandleFunc("/redirect/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	specs := []platform.Spec{
		{Name: "P1", URLTemplate: srv.URL + "/status/{}", Mode: platform.ModeStatusCode},
		{Name: "P2", URLTemplate: srv.URL + "/marker/{}", Mode: platform.ModeBodyAbsentMarker, Marker: "user not found"},
		{Name: "P3", URLTemplate: srv.URL + "/redirect/{}", Mode: platform.ModeRedirectCheck},
	}

	s := NewScanner(srv.Client(), Config{Timeout: 5 * time.Second}, nil)
	results := collectAll(s.Scan(context.Background(), "hydra", specs))

	require.Len(t, results, 3)
	assert.Equal(t, OutcomeFound, results["P1"].Outcome)
	assert.Equal(t, OutcomeFound, results["P2"].Outcome)
	assert.Equal(t, OutcomeFound, results["P3"].Outcome)
}

func TestScanMixedOutcomeScenario(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/status/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/marker/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "sorry, user not found")
	})
	mux.HandleFunc("/slow/", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	specs := []platform.Spec{
		{Name: "P1", URLTemplate: srv.URL + "/status/{}", Mode: platform.ModeStatusCode},
		{Name: "P2", URLTemplate: srv.URL + "/marker/{}", Mode: platform.ModeBodyAbsentMarker, Marker: "user not found"},
		{Name: "P3", URLTemplate: srv.URL + "/slow/{}", Mode: platform.ModeStatusCode},
	}

	s := NewScanner(srv.Client(), Config{Timeout: 200 * time.Millisecond}, nil)
	results := collectAll(s.Scan(context.Background(), "hydra", specs))

	require.Len(t, results, 3)
	assert.Equal(t, OutcomeUnknown, results["P1"].Outcome, "5xx must never be found or not found")
	assert.Equal(t, OutcomeNotFound, results["P2"].Outcome)
	assert.Equal(t, OutcomeError, results["P3"].Outcome)
	assert.NotEmpty(t, results["P3"].ErrorDetail)
	assert.Zero(t, results["P3"].HTTPStatus)
}

func TestScanTimeoutIsPerRequestNotPerBatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/slow/", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	mux.HandleFunc("/fast/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	specs := []platform.Spec{
		{Name: "Slow", URLTemplate: srv.URL + "/slow/{}", Mode: platform.ModeStatusCode},
		{Name: "Fast1", URLTemplate: srv.URL + "/fast/{}", Mode: platform.ModeStatusCode},
		{Name: "Fast2", URLTemplate: srv.URL + "/fast/{}", Mode: platform.ModeStatusCode},
	}

	s := NewScanner(srv.Client(), Config{Concurrency: 3, Timeout: 300 * time.Millisecond}, nil)

	start := time.Now()
	results := collectAll(s.Scan(context.Background(), "hydra", specs))
	elapsed := time.Since(start)

	require.Len(t, results, 3)
	assert.Equal(t, OutcomeError, results["Slow"].Outcome)
	assert.Equal(t, OutcomeFound, results["Fast1"].Outcome)
	assert.Equal(t, OutcomeFound, results["Fast2"].Outcome)
	// The slow platform costs at most one timeout window, not one per probe.
	assert.Less(t, elapsed, 2*time.Second)
}

func TestScanRespectsConcurrencyCeiling(t *testing.T) {
	const ceiling = 2

	var inFlight, peak int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&inFlight, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if n <= old || atomic.CompareAndSwapInt64(&peak, old, n) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		atomic.AddInt64(&inFlight, -1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	specs := specsFor(srv.URL, 10)
	s := NewScanner(srv.Client(), Config{Concurrency: ceiling, Timeout: 5 * time.Second}, nil)

	results := collectAll(s.Scan(context.Background(), "hydra", specs))

	require.Len(t, results, 10)
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(ceiling))
}

func TestScanCancellationPreservesCompletedResults(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/fast/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/block/", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	defer close(release)

	specs := []platform.Spec{
		{Name: "P1", URLTemplate: srv.URL + "/fast/{}", Mode: platform.ModeStatusCode},
		{Name: "P2", URLTemplate: srv.URL + "/fast/{}", Mode: platform.ModeStatusCode},
		{Name: "P3", URLTemplate: srv.URL + "/block/{}", Mode: platform.ModeStatusCode},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := NewScanner(srv.Client(), Config{Concurrency: 1, Timeout: 10 * time.Second}, nil)

	var results []Result
	for r := range s.Scan(ctx, "hydra", specs) {
		results = append(results, r)
		if len(results) == 2 {
			cancel()
		}
	}

	// FIFO admission with concurrency 1: P1 and P2 complete, P3 is abandoned.
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, OutcomeFound, r.Outcome)
	}
}

func TestScanTimeoutMidBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Send headers and a partial body, then stall past the deadline.
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "<html>")
		w.(http.Flusher).Flush()
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	specs := []platform.Spec{
		{Name: "Drip", URLTemplate: srv.URL + "/{}", Mode: platform.ModeBodyAbsentMarker, Marker: "user not found"},
	}

	s := NewScanner(srv.Client(), Config{Timeout: 200 * time.Millisecond}, nil)
	results := collectAll(s.Scan(context.Background(), "hydra", specs))

	require.Len(t, results, 1)
	assert.Equal(t, OutcomeError, results["Drip"].Outcome)
	assert.Contains(t, results["Drip"].ErrorDetail, "timeout")
}

func TestScanUndecodableBodyIsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte{0xff, 0xfe, 0x00, 0x01})
	}))
	defer srv.Close()

	specs := []platform.Spec{
		{Name: "Binary", URLTemplate: srv.URL + "/{}", Mode: platform.ModeBodyAbsentMarker, Marker: "user not found"},
	}

	s := NewScanner(srv.Client(), Config{Timeout: 5 * time.Second}, nil)
	results := collectAll(s.Scan(context.Background(), "hydra", specs))

	require.Len(t, results, 1)
	assert.Equal(t, OutcomeUnknown, results["Binary"].Outcome)
}

func TestScanEmptySpecList(t *testing.T) {
	s := NewScanner(http.DefaultClient, Config{}, nil)
	results := collectAll(s.Scan(context.Background(), "hydra", nil))
	assert.Empty(t, results)
}
