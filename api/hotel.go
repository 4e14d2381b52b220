package api

import (
	"net/http"

	"project/utils"

	"github.com/gin-gonic/gin"
)

// GetHotelHandler handles GET /api/hotels/:hotelId.
func (h *APIHandler) GetHotelHandler(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotelId")
	if !ok {
		return
	}

	hotel, err := h.hotelService.GetHotel(hotelID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// GetRoomTypesHandler handles GET /api/hotels/:hotelId/room-types.
func (h *APIHandler) GetRoomTypesHandler(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotelId")
	if !ok {
		return
	}

	roomTypes, err := h.hotelService.GetRoomTypes(hotelID)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, roomTypes)
}
