package controllers

import (
	"cart-widget/models"
	"cart-widget/repositories"
	"cart-widget/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrInvalidPrice):
		return http.StatusUnprocessableEntity, "Invalid price"
	case errors.Is(err, services.ErrUnknownInteraction):
		return http.StatusBadRequest, "Unknown interaction"
	case errors.Is(err, services.ErrNoSession):
		return http.StatusUnauthorized, "No active session"
	case errors.Is(err, services.ErrSessionEnded):
		return http.StatusConflict, "Session has ended"
	case errors.Is(err, repositories.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func respondError(c *gin.Context, err error) {
	status, message := statusFor(err)
	_ = c.Error(err)
	c.JSON(status, models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
