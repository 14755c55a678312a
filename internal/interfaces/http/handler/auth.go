package handler

import (
	"strings"

	"github.com/fiberops/backend/internal/application/identity"
	"github.com/fiberops/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers auth routes on the given group
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.RefreshToken)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
}

// Register godoc
// @Summary      Register a new organization
// @Description  Create an organization together with its owner account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.RegisterInput true "Registration data"
// @Success      201 {object} dto.Response{data=identity.AuthResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input identity.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Login godoc
// @Summary      User login
// @Description  Authenticate with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.LoginInput true "Login credentials"
// @Success      200 {object} dto.Response{data=identity.AuthResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input identity.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Description  Rotate the token pair using a refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.RefreshTokenInput true "Refresh token"
// @Success      200 {object} dto.Response{data=identity.AuthResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input identity.RefreshTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Logout godoc
// @Summary      User logout
// @Description  Revoke the current access token and the supplied refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// The refresh token in the body is optional
	var input identity.LogoutInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			h.BindError(c, err)
			return
		}
	}

	// The access token being revoked is the one on this request
	authHeader := c.GetHeader(middleware.AuthHeaderKey)
	input.AccessToken = strings.TrimPrefix(authHeader, middleware.BearerPrefix)

	if err := h.authService.Logout(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Logged out successfully"})
}

// Me godoc
// @Summary      Get current user
// @Description  Return the authenticated user's profile and organization
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response{data=identity.UserInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}
