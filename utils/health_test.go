package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHealthMonitorProbesImmediately(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	StartHealthMonitor(srv.URL)

	// The first probe fires before the ticker, so a snapshot must appear
	// well within the 60s tick interval.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		status := GetHealthStatus()
		if !status.CheckedAt.IsZero() {
			if !status.Upstream {
				t.Error("Upstream = false against a healthy probe target")
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no health snapshot recorded before the first tick")
}
