package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/logger"
	"studybuddy-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService provides registration, login and token validation
type AuthService struct {
	config    *AuthConfig
	users     repository.UserRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uint   `json:"user_id" example:"1005"`
	Email                string `json:"email" example:"jane.doe@school.edu"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,min=8,max=72"`
	CollegeLevel string `json:"college_level,omitempty" validate:"max=50"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserProfile is the public view of an account
type UserProfile struct {
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CollegeLevel string `json:"college_level,omitempty"`
}

// LoginResponse represents the response of a successful login
type LoginResponse struct {
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
	ExpiresIn int64       `json:"expires_in"`
	User      UserProfile `json:"user"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users repository.UserRepositoryInterface, validator *validator.Validate) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:    config,
		users:     users,
		validator: validator,
		now:       time.Now,
	}, nil
}

// Register creates an account with a bcrypt password hash
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*UserProfile, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "first_name, last_name, a valid email and a password of at least 8 characters are required")
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CollegeLevel: req.CollegeLevel,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithField("new_user_id", user.UserID).Info("user registered")
	profile := toProfile(user)
	return &profile, nil
}

// Login checks the credentials and issues a signed token
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.config.TokenTTL.Seconds()),
		User:      toProfile(user),
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID: user.UserID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", user.UserID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.UserID != 0 {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func toProfile(user *models.User) UserProfile {
	return UserProfile{
		UserID:       user.UserID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		CollegeLevel: user.CollegeLevel,
	}
}
