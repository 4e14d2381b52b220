package utils

import (
	"log"
	"net/http"
	"time"

	"project/services"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body every failed request carries.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

// SendJSONError sends a standardized JSON error response and logs the
// internal error. For 5xx errors the client gets a generic message while the
// actual error is only logged.
func SendJSONError(c *gin.Context, statusCode int, kind, publicMsg string, internalError error) {
	if internalError != nil {
		log.Printf("ERROR: Handler error: status_code=%d, message='%s', internal_error='%v', path='%s'",
			statusCode, publicMsg, internalError, c.Request.URL.Path)
	}

	if statusCode >= http.StatusInternalServerError {
		publicMsg = "An unexpected error occurred"
	}

	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Timestamp: time.Now(),
		Status:    statusCode,
		Error:     kind,
		Message:   publicMsg,
	})
}

// SendServiceError maps a typed service failure onto its HTTP status:
// NotFound 404, RoomUnavailable/Conflict 409, QuotaExceeded 402,
// Validation/InvalidState 400, anything else 500.
func SendServiceError(c *gin.Context, err error) {
	switch {
	case services.IsNotFound(err):
		SendJSONError(c, http.StatusNotFound, "Not Found", err.Error(), nil)
	case services.IsRoomUnavailable(err):
		SendJSONError(c, http.StatusConflict, "Room Unavailable", err.Error(), nil)
	case services.IsConflict(err):
		SendJSONError(c, http.StatusConflict, "Conflict", err.Error(), nil)
	case services.IsQuotaExceeded(err):
		SendJSONError(c, http.StatusPaymentRequired, "Usage Limit Exceeded", err.Error(), nil)
	case services.IsValidation(err):
		SendJSONError(c, http.StatusBadRequest, "Validation Error", err.Error(), nil)
	case services.IsInvalidState(err):
		SendJSONError(c, http.StatusBadRequest, "Invalid State", err.Error(), nil)
	default:
		SendJSONError(c, http.StatusInternalServerError, "Internal Server Error", "", err)
	}
}
