package api

import (
	"net/http"
	"strconv"
	"time"

	"project/models"
	"project/services"
	"project/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AvailabilityCheckRequest asks whether a room is free for a date range.
type AvailabilityCheckRequest struct {
	HotelID      uint   `json:"hotel_id" binding:"required"`
	RoomNumber   string `json:"room_number" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
}

// BookingCreateRequest carries a new reservation.
type BookingCreateRequest struct {
	HotelID      uint            `json:"hotel_id" binding:"required"`
	GuestName    string          `json:"guest_name" binding:"required"`
	GuestEmail   string          `json:"guest_email" binding:"omitempty,email"`
	GuestPhone   string          `json:"guest_phone"`
	CheckInDate  string          `json:"check_in_date" binding:"required"`
	CheckOutDate string          `json:"check_out_date" binding:"required"`
	RoomNumber   string          `json:"room_number" binding:"required"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// BookingModifyRequest carries partial updates; omitted fields stay as they
// are.
type BookingModifyRequest struct {
	GuestName    *string          `json:"guest_name"`
	GuestEmail   *string          `json:"guest_email" binding:"omitempty,email"`
	GuestPhone   *string          `json:"guest_phone"`
	CheckInDate  *string          `json:"check_in_date"`
	CheckOutDate *string          `json:"check_out_date"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	Status       *string          `json:"status"`
}

// BookingResponse is the wire shape of a booking; dates go out as
// YYYY-MM-DD strings.
type BookingResponse struct {
	ID           uint            `json:"id"`
	HotelID      uint            `json:"hotel_id"`
	Reference    string          `json:"reference"`
	GuestName    string          `json:"guest_name"`
	GuestEmail   string          `json:"guest_email"`
	GuestPhone   string          `json:"guest_phone"`
	CheckInDate  string          `json:"check_in_date"`
	CheckOutDate string          `json:"check_out_date"`
	RoomNumber   string          `json:"room_number"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	ConfirmedAt  *time.Time      `json:"confirmed_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CheckAvailabilityHandler handles POST /api/bookings/check-availability.
func (h *APIHandler) CheckAvailabilityHandler(c *gin.Context) {
	var req AvailabilityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "Invalid request format: "+err.Error(), nil)
		return
	}

	checkIn, checkOut, ok := parseDateRange(c, req.CheckInDate, req.CheckOutDate)
	if !ok {
		return
	}

	result, err := h.bookingService.CheckAvailability(req.HotelID, req.RoomNumber, checkIn, checkOut)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateBookingHandler handles POST /api/bookings/create.
func (h *APIHandler) CreateBookingHandler(c *gin.Context) {
	var req BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "Invalid request format: "+err.Error(), nil)
		return
	}

	checkIn, checkOut, ok := parseDateRange(c, req.CheckInDate, req.CheckOutDate)
	if !ok {
		return
	}

	booking, err := h.bookingService.CreateBooking(services.CreateBookingInput{
		HotelID:      req.HotelID,
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		GuestPhone:   req.GuestPhone,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		RoomNumber:   req.RoomNumber,
		TotalAmount:  req.TotalAmount,
	})
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// ModifyBookingHandler handles PUT /api/bookings/modify/:id.
func (h *APIHandler) ModifyBookingHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req BookingModifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "Invalid request format: "+err.Error(), nil)
		return
	}

	input := services.ModifyBookingInput{
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestPhone:  req.GuestPhone,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
	}
	if req.CheckInDate != nil {
		checkIn, err := parseDate(*req.CheckInDate)
		if err != nil {
			utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "check_in_date must be formatted as YYYY-MM-DD", nil)
			return
		}
		input.CheckInDate = &checkIn
	}
	if req.CheckOutDate != nil {
		checkOut, err := parseDate(*req.CheckOutDate)
		if err != nil {
			utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "check_out_date must be formatted as YYYY-MM-DD", nil)
			return
		}
		input.CheckOutDate = &checkOut
	}

	booking, err := h.bookingService.ModifyBooking(id, input)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

// CancelBookingHandler handles DELETE /api/bookings/cancel/:id.
func (h *APIHandler) CancelBookingHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.bookingService.CancelBooking(id); err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBookingsByHotelHandler handles GET /api/bookings/hotel/:hotelId.
func (h *APIHandler) GetBookingsByHotelHandler(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotelId")
	if !ok {
		return
	}
	bookings, err := h.bookingService.GetBookingsByHotel(hotelID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func toBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		HotelID:      b.HotelID,
		Reference:    b.Reference,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		GuestPhone:   b.GuestPhone,
		CheckInDate:  formatDate(b.CheckInDate),
		CheckOutDate: formatDate(b.CheckOutDate),
		RoomNumber:   b.RoomNumber,
		TotalAmount:  b.TotalAmount,
		Status:       string(b.Status),
		ConfirmedAt:  b.ConfirmedAt,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func parseDateRange(c *gin.Context, inStr, outStr string) (checkIn, checkOut time.Time, ok bool) {
	checkIn, err := parseDate(inStr)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "check_in_date must be formatted as YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, false
	}
	checkOut, err = parseDate(outStr)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "check_out_date must be formatted as YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "Invalid "+name+" parameter", nil)
		return 0, false
	}
	return uint(value), true
}
