package utils

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// HealthStatus represents the current reachability of the reservation
// service.
type HealthStatus struct {
	Upstream  bool      `json:"upstream"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic reachability checks against the
// reservation service and updates in-memory state.
func StartHealthMonitor(probeURL string) {
	client := &http.Client{Timeout: 5 * time.Second}

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		// Probe immediately so /health never serves a zero-value snapshot.
		recordProbe(client, probeURL)
		for range ticker.C {
			recordProbe(client, probeURL)
		}
	}()
}

func recordProbe(client *http.Client, probeURL string) {
	healthy := probe(client, probeURL)

	healthMu.Lock()
	currentHealth = HealthStatus{
		Upstream:  healthy,
		CheckedAt: time.Now(),
	}
	healthMu.Unlock()
}

func probe(client *http.Client, probeURL string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, probeURL, nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < 500
}
