package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcikids/portal/models"
	"github.com/mcikids/portal/store"
)

type RegistrationHandler struct {
	st *store.Store
}

func NewRegistrationHandler(st *store.Store) *RegistrationHandler {
	return &RegistrationHandler{st: st}
}

// GET /registrations (leader only)
func (h *RegistrationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.Registrations())
}

type registrationPayload struct {
	ChildName        string `json:"child_name"`
	BirthDate        string `json:"birth_date"`
	GuardianName     string `json:"guardian_name"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	EmergencyPhone   string `json:"emergency_phone"`
	EmergencyContact string `json:"emergency_contact"`
	Notes            string `json:"notes"`
}

// POST /registrations
// The family registration form is open to visitors; no session required.
func (h *RegistrationHandler) Create(c echo.Context) error {
	var req registrationPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	reg, err := h.st.AddRegistration(models.Registration{
		ChildName:        req.ChildName,
		BirthDate:        req.BirthDate,
		GuardianName:     req.GuardianName,
		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyPhone:   req.EmergencyPhone,
		EmergencyContact: req.EmergencyContact,
		Notes:            req.Notes,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, reg)
}
