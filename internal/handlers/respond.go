package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nttbank/account-service/internal/apperrors"
	"github.com/nttbank/account-service/internal/dto"
	"github.com/nttbank/account-service/internal/middleware"
)

// respondError writes err as a dto.ErrorResponse with the status of its kind.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus()
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("code", appErr.Code), slog.String("error", err.Error()))
		} else {
			logger.Warn("Request rejected", slog.String("code", appErr.Code), slog.String("error", err.Error()))
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    appErr.Code,
			Error:   string(appErr.Kind),
			Message: appErr.Message,
		})
		return
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   http.StatusText(http.StatusNotFound),
			Message: "Resource not found",
		})
		return
	}

	logger.Error("Unexpected error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   http.StatusText(http.StatusInternalServerError),
		Message: "An unexpected error occurred",
	})
}

// bindJSON decodes the body into req and runs its validate tags. It writes the 400 response itself.
func bindJSON(c *gin.Context, req any) bool {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind JSON", slog.String("error", err.Error()))
		appErr := apperrors.ErrInvalidRequest
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    appErr.Code,
			Error:   string(appErr.Kind),
			Message: "Invalid request format: " + err.Error(),
		})
		return false
	}

	if details := middleware.ValidateRequest(req); len(details) > 0 {
		logger.Warn("Request validation failed", slog.Int("violations", len(details)))
		appErr := apperrors.ErrInvalidRequest
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    appErr.Code,
			Error:   string(appErr.Kind),
			Message: "Request validation failed",
			Details: details,
		})
		return false
	}
	return true
}
