package routes

import (
	"net/http"
	"time"

	"rentkiosk/handlers"
	"rentkiosk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterKioskRoutes registers the navigation and step-data endpoints.
func RegisterKioskRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	kiosk := r.Group("/api/kiosk")
	{
		kiosk.GET("/:id/navigate", hb.Kiosk.Navigate)
		kiosk.GET("/:id/step/:step", hb.Kiosk.LoadStep)
	}
	r.GET("/api/recommend", hb.Kiosk.Recommend)
}

// RegisterBookingRoutes registers the proxied booking mutation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.POST("", hb.Kiosk.CreateBooking)
		booking.POST("/:id/protections/:protectionId", hb.Kiosk.SelectProtection)
		booking.POST("/:id/complete", hb.Kiosk.CompleteBooking)
	}
}

// RegisterVoiceRoutes registers the speech and broadcast endpoints.
func RegisterVoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/tts", hb.Speech.TTS)
	r.POST("/api/trigger-broadcast", hb.Broadcast.Trigger)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "upstream": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterKioskRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterVoiceRoutes(r, hb)
	RegisterHealthRoute(r)
}
