package services

import (
	"fmt"
	"log"
	"time"

	"project/config"
	"project/models"
	"project/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the fields for a new hotel-admin account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	HotelID   uint
}

// LoginResult bundles the issued token with the authenticated user.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService handles admin registration, login and token issuance.
type AuthService interface {
	Register(input RegisterInput) (*models.User, error)
	Login(email, password string) (*LoginResult, error)
	GetUserByEmail(email string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register creates an active HOTEL_ADMIN account with a bcrypt-hashed
// password. Registering an already-taken email fails validation.
func (s *authService) Register(input RegisterInput) (*models.User, error) {
	exists, err := s.userRepo.ExistsByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, NewValidationError("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:     input.Email,
		Password:  string(hash),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		HotelID:   input.HotelID,
		Role:      models.RoleHotelAdmin,
		IsActive:  true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Printf("INFO: [AuthService] Registered user %s for hotel %d.", user.Email, user.HotelID)
	return user, nil
}

// Login verifies the credentials and issues a signed JWT. Bad email and bad
// password are indistinguishable to the caller.
func (s *authService) Login(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, NewValidationError("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("WARN: [AuthService] Failed login attempt for %s.", email)
		return nil, NewValidationError("Invalid email or password")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

// GetUserByEmail looks up the account behind an authenticated request.
func (s *authService) GetUserByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, NewNotFoundError("User", "email", email)
	}
	return user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.Email,
		"role":     string(user.Role),
		"hotel_id": user.HotelID,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(config.AppConfig.JWT.ExpiryHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWT.Secret))
}
