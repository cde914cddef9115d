package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Config holds the client's connection settings. Built once at process
// start and immutable afterwards.
type Config struct {
	BaseURL               string
	RecommendationBaseURL string
	Timeout               time.Duration
}

// Client is a typed HTTP client over the reservation service. One upstream
// request per operation; no retries at this layer.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// GetBooking fetches the raw booking record. The payload is an open bag, so
// it is returned as parsed-but-untyped JSON for the normalizer.
func (c *Client) GetBooking(ctx context.Context, bookingID string) (json.RawMessage, error) {
	if bookingID == "" {
		return nil, &InvalidArgumentError{Field: "bookingID"}
	}
	return c.getRaw(ctx, "getBooking", c.bookingURL(bookingID, ""))
}

// ListVehicles fetches the vehicle catalog with its deals for the booking.
func (c *Client) ListVehicles(ctx context.Context, bookingID string) (*VehiclesPayload, error) {
	if bookingID == "" {
		return nil, &InvalidArgumentError{Field: "bookingID"}
	}
	var out VehiclesPayload
	if err := c.getJSON(ctx, "listVehicles", c.bookingURL(bookingID, "vehicles"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProtections fetches the protection packages offered for the booking.
func (c *Client) ListProtections(ctx context.Context, bookingID string) (*ProtectionsPayload, error) {
	if bookingID == "" {
		return nil, &InvalidArgumentError{Field: "bookingID"}
	}
	var out ProtectionsPayload
	if err := c.getJSON(ctx, "listProtections", c.bookingURL(bookingID, "protections"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAddons fetches the addon catalog for the booking.
func (c *Client) ListAddons(ctx context.Context, bookingID string) (*AddonsPayload, error) {
	if bookingID == "" {
		return nil, &InvalidArgumentError{Field: "bookingID"}
	}
	var out AddonsPayload
	if err := c.getJSON(ctx, "listAddons", c.bookingURL(bookingID, "addons"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRecommendation asks the recommendation engine for an upsell pairing.
func (c *Client) GetRecommendation(ctx context.Context, vehicleID string) (*RecommendationPayload, error) {
	if vehicleID == "" {
		return nil, &InvalidArgumentError{Field: "vehicleID"}
	}
	endpoint := fmt.Sprintf("%s/booking/%s/recommend", c.cfg.RecommendationBaseURL, url.PathEscape(vehicleID))
	var out RecommendationPayload
	if err := c.getJSON(ctx, "getRecommendation", endpoint, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBooking opens a fresh booking upstream and returns its record
// verbatim.
func (c *Client) CreateBooking(ctx context.Context) (json.RawMessage, error) {
	return c.postRaw(ctx, "createBooking", c.cfg.BaseURL+"/booking")
}

// SelectProtection applies a protection package to the booking upstream.
func (c *Client) SelectProtection(ctx context.Context, bookingID, protectionID string) (json.RawMessage, error) {
	if bookingID == "" {
		return nil, &InvalidArgumentError{Field: "bookingID"}
	}
	if protectionID == "" {
		return nil, &InvalidArgumentError{Field: "protectionID"}
	}
	endpoint := c.bookingURL(bookingID, "protections") + "/" + url.PathEscape(protectionID)
	return c.postRaw(ctx, "selectProtection", endpoint)
}

// CompleteBooking finalizes the booking upstream.
func (c *Client) CompleteBooking(ctx context.Context, bookingID string) (json.RawMessage, error) {
	if bookingID == "" {
		return nil, &InvalidArgumentError{Field: "bookingID"}
	}
	return c.postRaw(ctx, "completeBooking", c.bookingURL(bookingID, "complete"))
}

func (c *Client) bookingURL(bookingID, suffix string) string {
	endpoint := fmt.Sprintf("%s/booking/%s", c.cfg.BaseURL, url.PathEscape(bookingID))
	if suffix != "" {
		endpoint += "/" + suffix
	}
	return endpoint
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string, out any) error {
	body, err := c.do(ctx, op, http.MethodGet, endpoint)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &MalformedResponseError{Op: op, Err: err}
	}
	return nil
}

func (c *Client) getRaw(ctx context.Context, op, endpoint string) (json.RawMessage, error) {
	return c.raw(ctx, op, http.MethodGet, endpoint)
}

func (c *Client) postRaw(ctx context.Context, op, endpoint string) (json.RawMessage, error) {
	return c.raw(ctx, op, http.MethodPost, endpoint)
}

func (c *Client) raw(ctx context.Context, op, method, endpoint string) (json.RawMessage, error) {
	body, err := c.do(ctx, op, method, endpoint)
	if err != nil {
		return nil, err
	}
	// Verify the body is a JSON object before handing it on untyped.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, &MalformedResponseError{Op: op, Err: err}
	}
	return json.RawMessage(body), nil
}

func (c *Client) do(ctx context.Context, op, method, endpoint string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, &UnavailableError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Upstream call failed", zap.String("op", op), zap.Error(err))
		return nil, &UnavailableError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Upstream returned error status",
			zap.String("op", op), zap.Int("status", resp.StatusCode))
		return nil, &UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
