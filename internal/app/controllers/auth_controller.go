package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/models/dto"
	"github.com/yigit/madrasah/internal/app/services"
	"github.com/yigit/madrasah/internal/middleware"
	"github.com/yigit/madrasah/internal/pkg/apperrors"
	"github.com/yigit/madrasah/internal/pkg/metrics"
	"github.com/yigit/madrasah/internal/pkg/session"
)

// AuthController handles registration, login and the session lifecycle
type AuthController struct {
	authService services.AuthService
	sessions    *session.Manager
	cookie      middleware.SessionCookie
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(
	authService services.AuthService,
	sessions *session.Manager,
	cookie middleware.SessionCookie,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		cookie:      cookie,
		metrics:     m,
		logger:      logger,
	}
}

// Register handles administrator registration
// @Summary Register a new administrator
// @Description Creates a user account. Does not log the user in.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.UserInput true "Credentials"
// @Success 200 {object} dto.AuthResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or username already taken"
// @Failure 403 {object} dto.ErrorResponse "Registration is disabled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var in models.UserInput
	if err := middleware.BindJSON(ctx, &in); err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &in)
	if err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "User created successfully",
		User:    dto.NewUserResponse(user),
	})
}

// Login handles administrator login
// @Summary Log in
// @Description Checks the credentials, starts a fresh session and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginInput true "Credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Wrong username or password"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var in models.LoginInput
	if err := middleware.BindJSON(ctx, &in); err != nil {
		c.metrics.RecordLogin(false)
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidCredentials, middleware.MsgInternalError)
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), &in)
	if err != nil {
		c.metrics.RecordLogin(false)
		if apperrors.Is(err, apperrors.ErrInvalidCredentials) {
			c.logger.Warn().Str("username", in.Username).Str("clientIP", ctx.ClientIP()).Msg("Failed login attempt")
		}
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}

	// a fresh session id on every login
	if err := c.sessions.Destroy(ctx.Request.Context(), c.cookie.Token(ctx)); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to destroy previous session")
	}
	_, token, err := c.sessions.Start(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}
	c.cookie.Set(ctx, token)
	c.metrics.RecordLogin(true)

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    dto.NewUserResponse(user),
	})
}

// Logout handles logout
// @Summary Log out
// @Description Destroys the current session, if any, and expires the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse "Logout successful"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.sessions.Destroy(ctx.Request.Context(), c.cookie.Token(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}
	c.cookie.Clear(ctx)
	ctx.JSON(http.StatusOK, dto.Success("Logout successful"))
}

// Me returns the logged-in user
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security SessionCookie
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	s, ok := middleware.CurrentSession(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated, middleware.MsgAuthenticationRequired)
		return
	}

	user, err := c.authService.GetUser(ctx.Request.Context(), s.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}

	ctx.JSON(http.StatusOK, dto.MeResponse{Success: true, User: dto.NewUserResponse(user)})
}
