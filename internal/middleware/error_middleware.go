package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/madrasah/internal/app/models/dto"
	"github.com/yigit/madrasah/internal/pkg/apperrors"
	"github.com/yigit/madrasah/internal/pkg/logger"
	"github.com/yigit/madrasah/internal/pkg/validation"
)

// Client-facing messages
const (
	MsgInvalidData            = "Invalid data"
	MsgUsernameTaken          = "Username is already taken"
	MsgInvalidCredentials     = "Wrong username or password"
	MsgAuthenticationRequired = "Authentication required"
	MsgRegistrationDisabled   = "Registration is disabled"
	MsgNotFound               = "Resource not found"
	MsgTooManyRequests        = "Too many requests, please try again later"
	MsgInternalError          = "Internal server error"
)

// HandleAPIError translates err into the JSON error envelope and aborts the request.
// Errors without a known mapping are logged and answered with 500 and fallback.
func HandleAPIError(c *gin.Context, err error, fallback string) {
	if fallback == "" {
		fallback = MsgInternalError
	}

	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: MsgInvalidData,
			Errors:  verrs,
		})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(MsgInvalidData))
	case errors.Is(err, apperrors.ErrUsernameTaken):
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(MsgUsernameTaken))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(MsgInvalidCredentials))
	case apperrors.Is(err, apperrors.ErrUnauthenticated, apperrors.ErrSessionNotFound):
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(MsgAuthenticationRequired))
	case errors.Is(err, apperrors.ErrRegistrationDisabled):
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(MsgRegistrationDisabled))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.PublicMessage(err, MsgNotFound)))
	case errors.Is(err, apperrors.ErrTooManyRequests):
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(MsgTooManyRequests))
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", RequestIDFrom(c)).
			Msg("Unhandled error while serving request")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(fallback))
	}
}
