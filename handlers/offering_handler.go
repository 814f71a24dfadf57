package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcikids/portal/models"
	"github.com/mcikids/portal/store"
)

type OfferingHandler struct {
	st *store.Store
}

func NewOfferingHandler(st *store.Store) *OfferingHandler { return &OfferingHandler{st: st} }

// GET /offerings
func (h *OfferingHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.Offerings())
}

// GET /offerings/totals
func (h *OfferingHandler) Totals(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.FinanceTotals())
}

type offeringPayload struct {
	Category  models.OfferingCategory  `json:"category"`  // oferta | gasto
	Direction models.OfferingDirection `json:"direction"` // entrada | saida
	Amount    float64                  `json:"amount"`
	Note      string                   `json:"note"`
}

// POST /offerings
func (h *OfferingHandler) Create(c echo.Context) error {
	var req offeringPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	entry, err := h.st.AddOffering(currentUser(c), req.Category, req.Direction, req.Amount, req.Note)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, entry)
}
