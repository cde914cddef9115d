package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubSpeech struct {
	enabled bool
	audio   []byte
	err     error
}

func (s *stubSpeech) Enabled() bool { return s.enabled }

func (s *stubSpeech) Synthesize(context.Context, string) ([]byte, error) {
	return s.audio, s.err
}

func performTTS(t *testing.T, svc *stubSpeech, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSpeechHandler(svc, zap.NewNop())
	r.POST("/api/tts", h.TTS)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestTTSRequiresText(t *testing.T) {
	for _, body := range []string{`{}`, `{"text":""}`, `not json`} {
		w := performTTS(t, &stubSpeech{enabled: true}, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestTTSBrowserFallbackWithoutKey(t *testing.T) {
	w := performTTS(t, &stubSpeech{enabled: false}, `{"text":"welcome"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"useBrowserTTS":true`) {
		t.Errorf("body = %s, want browser fallback signal", w.Body.String())
	}
}

func TestTTSReturnsAudio(t *testing.T) {
	w := performTTS(t, &stubSpeech{enabled: true, audio: []byte("mp3-bytes")}, `{"text":"welcome"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "audio/mpeg" {
		t.Errorf("Content-Type = %q, want audio/mpeg", got)
	}
	if w.Body.String() != "mp3-bytes" {
		t.Errorf("body = %q, want synthesized audio", w.Body.String())
	}
}
