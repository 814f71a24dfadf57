package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcikids/portal/models"
	"github.com/mcikids/portal/store"
)

type StudentHandler struct {
	st *store.Store
}

func NewStudentHandler(st *store.Store) *StudentHandler { return &StudentHandler{st: st} }

// GET /students
func (h *StudentHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.Students())
}

type studentPayload struct {
	Name string             `json:"name"`
	Kind models.StudentKind `json:"kind"` // aluno | convidado (default aluno)
}

// POST /students
func (h *StudentHandler) Create(c echo.Context) error {
	var req studentPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	st, err := h.st.AddStudent(req.Name, req.Kind)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, st)
}
