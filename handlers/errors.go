package handlers

import (
	"errors"
	"net/http"

	"rentkiosk/services/checkout"
	"rentkiosk/services/reservation"

	"github.com/gin-gonic/gin"
)

// writeCheckoutError maps the workflow error taxonomy onto HTTP statuses.
// Upstream error statuses are preserved verbatim for diagnostics.
func writeCheckoutError(c *gin.Context, err error) {
	var invalidArg *reservation.InvalidArgumentError
	if errors.As(err, &invalidArg) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	var stepErr *checkout.StepDataUnavailableError
	if errors.As(err, &stepErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "failed to load step data",
			"step":    string(stepErr.Step),
			"details": err.Error(),
		})
		return
	}

	var workflowErr *checkout.WorkflowError
	if errors.As(err, &workflowErr) {
		c.JSON(http.StatusConflict, gin.H{"error": "unknown booking state", "details": err.Error()})
		return
	}

	var upstreamErr *reservation.UpstreamError
	if errors.As(err, &upstreamErr) {
		c.JSON(upstreamErr.StatusCode, gin.H{"error": "reservation service error", "details": err.Error()})
		return
	}

	var unavailable *reservation.UnavailableError
	if errors.As(err, &unavailable) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "reservation service unreachable", "details": err.Error()})
		return
	}

	var malformed *reservation.MalformedResponseError
	if errors.As(err, &malformed) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "reservation service returned malformed data", "details": err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "details": err.Error()})
}
