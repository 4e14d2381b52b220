package api

import (
	"net/http"

	"project/middleware"
	"project/models"
	"project/services"
	"project/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRequest creates a new hotel-admin account.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	HotelID   uint   `json:"hotel_id" binding:"required"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the wire shape of an admin account.
type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	HotelID   uint   `json:"hotel_id"`
	IsActive  bool   `json:"is_active"`
}

// JwtResponse carries the issued token and the authenticated identity.
type JwtResponse struct {
	Token   string `json:"token"`
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	HotelID uint   `json:"hotel_id"`
}

// RegisterHandler handles POST /api/auth/register.
func (h *APIHandler) RegisterHandler(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "Invalid request format: "+err.Error(), nil)
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		HotelID:   req.HotelID,
	})
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(user))
}

// LoginHandler handles POST /api/auth/login.
func (h *APIHandler) LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Validation Error", "Invalid request format: "+err.Error(), nil)
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if services.IsValidation(err) {
			// Bad credentials are a 401, not a 400.
			utils.SendJSONError(c, http.StatusUnauthorized, "Unauthorized", err.Error(), nil)
			return
		}
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, JwtResponse{
		Token:   result.Token,
		UserID:  result.User.ID,
		Email:   result.User.Email,
		Role:    string(result.User.Role),
		HotelID: result.User.HotelID,
	})
}

// CurrentUserHandler handles GET /api/auth/me.
func (h *APIHandler) CurrentUserHandler(c *gin.Context) {
	email := c.GetString(middleware.ContextUserEmail)
	if email == "" {
		utils.SendJSONError(c, http.StatusUnauthorized, "Unauthorized", "Not authenticated", nil)
		return
	}

	user, err := h.authService.GetUserByEmail(email)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		HotelID:   u.HotelID,
		IsActive:  u.IsActive,
	}
}
