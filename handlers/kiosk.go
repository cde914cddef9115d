package handlers

import (
	"net/http"

	"rentkiosk/models"
	"rentkiosk/services/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// KioskHandler serves the navigation and step-data endpoints consumed by
// the kiosk frontend.
type KioskHandler struct {
	Service checkout.CheckoutService
	Logger  *zap.Logger
}

func NewKioskHandler(svc checkout.CheckoutService, logger *zap.Logger) *KioskHandler {
	return &KioskHandler{Service: svc, Logger: logger}
}

// Navigate resolves where the kiosk should go for a booking and returns the
// data for that step.
func (h *KioskHandler) Navigate(c *gin.Context) {
	bookingID := c.Param("id")

	result, err := h.Service.Navigate(c.Request.Context(), bookingID)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// LoadStep serves one step's data for kiosks landing on a step directly.
func (h *KioskHandler) LoadStep(c *gin.Context) {
	bookingID := c.Param("id")
	route := models.RouteToken(c.Param("step"))

	data, err := h.Service.LoadStep(c.Request.Context(), bookingID, route)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingId": bookingID, "route": route, "data": data})
}

// Recommend returns an upsell pairing for the vehicle in the query string.
func (h *KioskHandler) Recommend(c *gin.Context) {
	vehicleID := c.Query("vehicle")
	if vehicleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": "vehicle query parameter is required"})
		return
	}

	rec, err := h.Service.Recommend(c.Request.Context(), vehicleID)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// CreateBooking opens a fresh booking upstream and relays its record.
func (h *KioskHandler) CreateBooking(c *gin.Context) {
	raw, err := h.Service.CreateBooking(c.Request.Context())
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// SelectProtection applies a protection package to the booking.
func (h *KioskHandler) SelectProtection(c *gin.Context) {
	bookingID := c.Param("id")
	protectionID := c.Param("protectionId")

	raw, err := h.Service.SelectProtection(c.Request.Context(), bookingID, protectionID)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// CompleteBooking finalizes the booking.
func (h *KioskHandler) CompleteBooking(c *gin.Context) {
	bookingID := c.Param("id")

	raw, err := h.Service.CompleteBooking(c.Request.Context(), bookingID)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}
