package reservation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(Config{
		BaseURL:               srv.URL,
		RecommendationBaseURL: srv.URL,
		Timeout:               2 * time.Second,
	}, zap.NewNop())
	return client, srv
}

func TestGetBookingSuccess(t *testing.T) {
	var gotPath, gotMethod string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{"id":"B1","status":"booking"}`))
	}))

	raw, err := client.GetBooking(context.Background(), "B1")
	if err != nil {
		t.Fatalf("GetBooking returned error: %v", err)
	}
	if gotMethod != http.MethodGet || gotPath != "/booking/B1" {
		t.Errorf("request = %s %s, want GET /booking/B1", gotMethod, gotPath)
	}
	if string(raw) != `{"id":"B1","status":"booking"}` {
		t.Errorf("payload = %s, want upstream body verbatim", raw)
	}
}

func TestClientRejectsEmptyIdentifiers(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://unused"}, zap.NewNop())
	ctx := context.Background()

	calls := []struct {
		name string
		fn   func() error
	}{
		{"GetBooking", func() error { _, err := client.GetBooking(ctx, ""); return err }},
		{"ListVehicles", func() error { _, err := client.ListVehicles(ctx, ""); return err }},
		{"ListProtections", func() error { _, err := client.ListProtections(ctx, ""); return err }},
		{"ListAddons", func() error { _, err := client.ListAddons(ctx, ""); return err }},
		{"GetRecommendation", func() error { _, err := client.GetRecommendation(ctx, ""); return err }},
		{"SelectProtection", func() error { _, err := client.SelectProtection(ctx, "", "P1"); return err }},
		{"CompleteBooking", func() error { _, err := client.CompleteBooking(ctx, ""); return err }},
	}
	for _, tc := range calls {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn()
			var invalid *InvalidArgumentError
			if !errors.As(err, &invalid) {
				t.Errorf("error = %v, want InvalidArgumentError", err)
			}
		})
	}
}

func TestClientPreservesUpstreamStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	_, err := client.ListVehicles(context.Background(), "B1")
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("error = %v, want UpstreamError", err)
	}
	if upstreamErr.StatusCode != http.StatusTeapot {
		t.Errorf("StatusCode = %d, want 418", upstreamErr.StatusCode)
	}
	if upstreamErr.Body != "short and stout" {
		t.Errorf("Body = %q, want upstream body verbatim", upstreamErr.Body)
	}
}

func TestClientMalformedResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json</html>`))
	}))

	_, err := client.ListAddons(context.Background(), "B1")
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Errorf("error = %v, want MalformedResponseError", err)
	}
}

func TestClientNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second}, zap.NewNop())

	_, err := client.GetBooking(context.Background(), "B1")
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("error = %v, want UnavailableError", err)
	}
}

func TestClientTimeoutMapsToUnavailable(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	client.cfg.Timeout = 50 * time.Millisecond
	client.httpClient.Timeout = 50 * time.Millisecond

	_, err := client.GetBooking(context.Background(), "B1")
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("error = %v, want UnavailableError on timeout", err)
	}
}

func TestSelectProtectionRequest(t *testing.T) {
	var gotPath, gotMethod string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{"ok":true}`))
	}))

	raw, err := client.SelectProtection(context.Background(), "B1", "P9")
	if err != nil {
		t.Fatalf("SelectProtection returned error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/booking/B1/protections/P9" {
		t.Errorf("request = %s %s, want POST /booking/B1/protections/P9", gotMethod, gotPath)
	}
	if string(raw) != `{"ok":true}` {
		t.Errorf("payload = %s, want upstream body verbatim", raw)
	}
}

func TestGetRecommendationRequest(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"base_car":{"raw":{}},"upsell_car":{"raw":{}},"upsell_reasons":["roomier"]}`))
	}))

	rec, err := client.GetRecommendation(context.Background(), "V1")
	if err != nil {
		t.Fatalf("GetRecommendation returned error: %v", err)
	}
	if gotPath != "/booking/V1/recommend" {
		t.Errorf("path = %s, want /booking/V1/recommend", gotPath)
	}
	if len(rec.UpsellReasons) != 1 || rec.UpsellReasons[0] != "roomier" {
		t.Errorf("UpsellReasons = %v, want [roomier]", rec.UpsellReasons)
	}
}
