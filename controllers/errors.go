package controllers

import (
	"errors"
	"net/http"

	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service sentinel errors to HTTP status codes.
// Anything unrecognized is a 500 with a generic message; the detail stays in
// the logs via gin's error list.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotAuthorized):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrInvalidCredential):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrDuplicateReview),
		errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicateRoom):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		_ = c.Error(err)
		utils.JSONError(c, http.StatusInternalServerError, "Server Error")
	}
}
