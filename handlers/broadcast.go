package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BroadcastHandler proxies the voice-broadcast trigger to the local
// broadcast engine.
type BroadcastHandler struct {
	URL        string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewBroadcastHandler(url string, logger *zap.Logger) *BroadcastHandler {
	return &BroadcastHandler{
		URL:        url,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Logger:     logger,
	}
}

// Trigger fires the broadcast and relays the engine's response.
func (h *BroadcastHandler) Trigger(c *gin.Context) {
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, h.URL, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build broadcast request", "details": err.Error()})
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.HTTPClient.Do(req)
	if err != nil {
		h.Logger.Warn("Broadcast engine unreachable", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "broadcast engine unreachable", "details": err.Error()})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to read broadcast response", "details": err.Error()})
		return
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.JSON(resp.StatusCode, gin.H{"error": "broadcast engine error", "details": string(body)})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
