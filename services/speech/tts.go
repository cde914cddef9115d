package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const modelID = "eleven_turbo_v2_5"

// SynthesisError carries the speech provider's status code and body for the
// caller's diagnostics.
type SynthesisError struct {
	StatusCode int
	Body       string
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("speech synthesis failed with status %d", e.StatusCode)
}

// SpeechService turns announcement text into playable audio.
type SpeechService interface {
	Enabled() bool
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// ElevenLabsService implements SpeechService against the ElevenLabs API.
// A stateless pass-through; nothing is cached or stored.
type ElevenLabsService struct {
	APIKey     string
	VoiceID    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewElevenLabsService(apiKey, voiceID string, logger *zap.Logger) *ElevenLabsService {
	return &ElevenLabsService{
		APIKey:     apiKey,
		VoiceID:    voiceID,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Logger:     logger,
	}
}

// Enabled reports whether an API key is configured. Without one the kiosk
// falls back to browser-side speech.
func (s *ElevenLabsService) Enabled() bool {
	return s.APIKey != ""
}

// Synthesize returns MP3 audio for the given text.
func (s *ElevenLabsService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	payload := map[string]any{
		"text":     text,
		"model_id": modelID,
		"voice_settings": map[string]any{
			"stability":         0.5,
			"similarity_boost":  0.75,
			"style":             0.0,
			"use_speaker_boost": true,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := "https://api.elevenlabs.io/v1/text-to-speech/" + s.VoiceID
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", s.APIKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		s.Logger.Warn("Speech provider returned error",
			zap.Int("status", resp.StatusCode))
		return nil, &SynthesisError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}
