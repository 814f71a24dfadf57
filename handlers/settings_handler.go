package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcikids/portal/models"
	"github.com/mcikids/portal/store"
)

type SettingsHandler struct {
	st *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler { return &SettingsHandler{st: st} }

// GET /admin/settings
func (h *SettingsHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.Settings())
}

// PUT /admin/settings
// The closure fields are reserved slots: stored and returned, enforced
// nowhere.
func (h *SettingsHandler) Update(c echo.Context) error {
	var req models.Settings
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	h.st.UpdateSettings(req)
	return c.JSON(http.StatusOK, h.st.Settings())
}
