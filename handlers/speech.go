package handlers

import (
	"errors"
	"net/http"

	"rentkiosk/services/speech"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SpeechHandler serves the text-to-speech pass-through used for kiosk
// announcements.
type SpeechHandler struct {
	Service speech.SpeechService
	Logger  *zap.Logger
}

func NewSpeechHandler(svc speech.SpeechService, logger *zap.Logger) *SpeechHandler {
	return &SpeechHandler{Service: svc, Logger: logger}
}

// TTS synthesizes the posted text. Without a configured provider key the
// kiosk is told to use browser-side speech instead.
func (h *SpeechHandler) TTS(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	if !h.Service.Enabled() {
		c.JSON(http.StatusOK, gin.H{"useBrowserTTS": true})
		return
	}

	audio, err := h.Service.Synthesize(c.Request.Context(), input.Text)
	if err != nil {
		var synthErr *speech.SynthesisError
		if errors.As(err, &synthErr) {
			c.JSON(synthErr.StatusCode, gin.H{"error": "speech synthesis failed", "details": synthErr.Body})
			return
		}
		h.Logger.Error("Speech synthesis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate speech"})
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "audio/mpeg", audio)
}
