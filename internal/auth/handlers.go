package auth

import (
	"net/http"
	"strings"

	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service *AuthService
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates an account
// @Summary Register
// @Description Create an account with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account data"
// @Success 201 {object} UserProfile "Created account"
// @Failure 400 {object} map[string]interface{} "Missing or invalid fields"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	profile, err := h.service.Register(c, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// Login issues a token for valid credentials
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse "Token and profile"
// @Failure 400 {object} map[string]interface{} "Missing fields"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Login(c, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ValidateToken validates JWT token and returns its claims
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Produce json
// @Param Authorization header string true "Bearer token to validate"
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	// Extract token from Bearer header
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

func writeError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.FromGinContext(c).WithError(err).Error("auth request failed")
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	body := gin.H{"error": apperrors.PublicMessage(err)}
	if code := apperrors.Code(err); code != "" {
		body["code"] = code
	}
	c.JSON(status, body)
}
