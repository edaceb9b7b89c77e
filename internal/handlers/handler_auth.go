package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	portssvc "github.com/SscSPs/immobilier_backend/internal/core/ports/services"
	"github.com/SscSPs/immobilier_backend/internal/dto"
	"github.com/SscSPs/immobilier_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles registration, login and the token-gated account endpoints.
type authHandler struct {
	authService    portssvc.AuthSvcFacade
	historyService portssvc.PasswordHistorySvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade, hs portssvc.PasswordHistorySvcFacade) *authHandler {
	return &authHandler{authService: as, historyService: hs}
}

// registerAuthRoutes sets up the routes for authentication.
// Login is rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) {
	setupValidator()
	h := newAuthHandler(services.Auth, services.PasswordHistory)
	requireUser := middleware.RequireUser(services.Auth)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
		auth.POST("/logout", h.logout)
		auth.GET("/me", requireUser, h.me)
		auth.GET("/password-history", requireUser, h.passwordHistory)
		auth.POST("/change-password", requireUser, h.changePassword)
	}
}

// register godoc
// @Summary Register new user
// @Description Creates a user account and records the initial password in the history.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Username or email already registered"
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid registration payload", slog.String("error", err.Error()))
		abortWithValidationError(c, err, locBody)
		return
	}

	logger.Info("Register attempt", slog.String("username", req.Username), slog.String("email", req.Email))
	user, err := h.authService.Register(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		var appErr *apperrors.AppError
		if apperrors.IsConflict(err) && errors.As(err, &appErr) {
			respondError(c, http.StatusBadRequest, appErr.Message)
			return
		}
		logger.Error("Registration error", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Registration error: "+err.Error())
		return
	}

	middleware.SetTrackedUser(c, user)
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid username or password"
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithValidationError(c, err, locBody)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.Is(err, apperrors.ErrUnauthorized) && errors.As(err, &appErr) {
			middleware.AbortUnauthorized(c, appErr.Message)
			return
		}
		logger.Error("Login error", slog.String("username", req.Username), slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Login error: "+err.Error())
		return
	}

	middleware.SetTrackedUser(c, user)
	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.ToUserResponse(user),
	})
}

// logout godoc
// @Summary Logout
// @Description Tokens are stateless; the client discards its token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	middleware.GetLoggerFromContext(c).Info("User logged out")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

// me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		middleware.AbortUnauthorized(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// passwordHistory godoc
// @Summary Password change history
// @Description Lists the current user's password changes, newest first. Hashes are never returned.
// @Tags auth
// @Produce json
// @Param limit query int false "Maximum entries (1-100)" default(10)
// @Success 200 {object} dto.PasswordHistoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/auth/password-history [get]
func (h *authHandler) passwordHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		middleware.AbortUnauthorized(c, "User not found")
		return
	}

	var params dto.PasswordHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithValidationError(c, err, locQuery)
		return
	}

	entries, err := h.historyService.GetPasswordHistory(c.Request.Context(), user.UserID, params.Limit)
	if err != nil {
		logger.Error("Error fetching password history", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Error fetching password history: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ToPasswordHistoryResponse(user.Username, entries))
}

// changePassword godoc
// @Summary Change password
// @Description Verifies the current password, stores the new hash and records the change.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/auth/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		middleware.AbortUnauthorized(c, "User not found")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithValidationError(c, err, locBody)
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), user, req, c.ClientIP())
	if err != nil {
		var appErr *apperrors.AppError
		if errors.Is(err, apperrors.ErrUnauthorized) && errors.As(err, &appErr) {
			middleware.AbortUnauthorized(c, appErr.Message)
			return
		}
		logger.Error("Password change error", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Password change error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password changed successfully"})
}
