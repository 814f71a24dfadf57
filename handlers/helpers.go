package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcikids/portal/common"
	"github.com/mcikids/portal/middlewares"
	"github.com/mcikids/portal/models"
)

// currentUser returns the session identity attached by the auth middleware,
// or nil for a guest request.
func currentUser(c echo.Context) *models.User {
	user, _ := c.Get(middlewares.ContextUserKey).(*models.User)
	return user
}

// fail maps store/persistence errors to the HTTP error shape.
func fail(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION"})
	case errors.Is(err, common.ErrNotAuthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "NOT_AUTHENTICATED"})
	case errors.Is(err, common.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	case errors.Is(err, common.ErrMalformed):
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "IMPORT_FAILED"})
	}
	return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
}
