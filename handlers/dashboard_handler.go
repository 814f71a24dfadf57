package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcikids/portal/store"
)

type DashboardHandler struct {
	st *store.Store
}

func NewDashboardHandler(st *store.Store) *DashboardHandler { return &DashboardHandler{st: st} }

// GET /admin/dashboard
// The figures the coordinator panel shows: headline finance totals plus
// collection counts.
func (h *DashboardHandler) Summary(c echo.Context) error {
	totals := h.st.FinanceTotals()
	return c.JSON(http.StatusOK, map[string]any{
		"totals":        totals,
		"students":      len(h.st.Students()),
		"registrations": len(h.st.Registrations()),
		"posts":         len(h.st.VisibleFeed(currentUser(c), "")),
	})
}
