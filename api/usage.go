package api

import (
	"net/http"
	"time"

	"project/models"
	"project/utils"

	"github.com/gin-gonic/gin"
)

// UsageStartRequest opens a new usage session for a hotel.
type UsageStartRequest struct {
	HotelID   uint   `json:"hotel_id" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}

// UsageUpdateRequest adds token consumption to an active session. Token
// counts are required and must not be negative.
type UsageUpdateRequest struct {
	SessionID    string `json:"session_id" binding:"required"`
	InputTokens  *int   `json:"input_tokens" binding:"required,gte=0"`
	OutputTokens *int   `json:"output_tokens" binding:"required,gte=0"`
}

// UsageEndRequest completes a session.
type UsageEndRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// UsageResponse is the wire shape of a usage record.
type UsageResponse struct {
	ID              uint       `json:"id"`
	HotelID         uint       `json:"hotel_id"`
	SessionID       string     `json:"session_id"`
	CallStartTime   *time.Time `json:"call_start_time"`
	CallEndTime     *time.Time `json:"call_end_time"`
	DurationSeconds *int64     `json:"duration_seconds"`
	InputTokens     int        `json:"input_tokens"`
	OutputTokens    int        `json:"output_tokens"`
	TotalTokens     int        `json:"total_tokens"`
	BookingAttempts int        `json:"booking_attempts"`
	Status          string     `json:"status"`
}

// StartSessionHandler handles POST /api/usage/start.
func (h *APIHandler) StartSessionHandler(c *gin.Context) {
	var req UsageStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "Invalid request format: "+err.Error(), nil)
		return
	}

	record, err := h.usageService.StartSession(req.HotelID, req.SessionID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUsageResponse(record))
}

// UpdateUsageHandler handles POST /api/usage/update.
func (h *APIHandler) UpdateUsageHandler(c *gin.Context) {
	var req UsageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "Invalid request format: "+err.Error(), nil)
		return
	}

	record, err := h.usageService.UpdateTokenUsage(req.SessionID, *req.InputTokens, *req.OutputTokens)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUsageResponse(record))
}

// RecordBookingAttemptHandler handles POST /api/usage/booking-attempt.
func (h *APIHandler) RecordBookingAttemptHandler(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "sessionId query parameter is required", nil)
		return
	}

	record, err := h.usageService.IncrementBookingAttempt(sessionID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUsageResponse(record))
}

// EndSessionHandler handles POST /api/usage/end.
func (h *APIHandler) EndSessionHandler(c *gin.Context) {
	var req UsageEndRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "Invalid request format: "+err.Error(), nil)
		return
	}

	record, err := h.usageService.EndSession(req.SessionID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUsageResponse(record))
}

// CurrentMonthUsageHandler handles GET /api/usage/current-month/:hotelId.
func (h *APIHandler) CurrentMonthUsageHandler(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotelId")
	if !ok {
		return
	}

	total, err := h.usageService.GetCurrentMonthTokenUsage(hotelID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hotel_id":     hotelID,
		"total_tokens": total,
	})
}

func toUsageResponse(r *models.UsageRecord) UsageResponse {
	return UsageResponse{
		ID:              r.ID,
		HotelID:         r.HotelID,
		SessionID:       r.SessionID,
		CallStartTime:   r.CallStartTime,
		CallEndTime:     r.CallEndTime,
		DurationSeconds: r.DurationSeconds,
		InputTokens:     r.InputTokens,
		OutputTokens:    r.OutputTokens,
		TotalTokens:     r.TotalTokens,
		BookingAttempts: r.BookingAttempts,
		Status:          string(r.Status),
	}
}
