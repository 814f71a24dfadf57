package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcikids/portal/models"
	"github.com/mcikids/portal/store"
)

type FileHandler struct {
	st *store.Store
}

func NewFileHandler(st *store.Store) *FileHandler { return &FileHandler{st: st} }

// GET /files
func (h *FileHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.Files())
}

type filePayload struct {
	Title string          `json:"title"`
	Kind  models.FileKind `json:"kind"` // pdf | txt
	URL   string          `json:"url"`
}

// POST /files
func (h *FileHandler) Create(c echo.Context) error {
	var req filePayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	entry, err := h.st.AddFile(req.Title, req.Kind, req.URL)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, entry)
}
