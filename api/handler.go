package api

import (
	"time"

	"project/services"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// APIHandler holds all dependencies for API handlers.
type APIHandler struct {
	bookingService services.BookingService
	usageService   services.UsageService
	authService    services.AuthService
	hotelService   services.HotelService
}

// NewAPIHandler creates a new APIHandler with necessary dependencies.
func NewAPIHandler(
	bookingService services.BookingService,
	usageService services.UsageService,
	authService services.AuthService,
	hotelService services.HotelService,
) *APIHandler {
	return &APIHandler{
		bookingService: bookingService,
		usageService:   usageService,
		authService:    authService,
		hotelService:   hotelService,
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
