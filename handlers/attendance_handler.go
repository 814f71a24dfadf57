package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mcikids/portal/store"
)

type AttendanceHandler struct {
	st *store.Store
}

func NewAttendanceHandler(st *store.Store) *AttendanceHandler { return &AttendanceHandler{st: st} }

// GET /attendance?date=YYYY-MM-DD
func (h *AttendanceHandler) List(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	return c.JSON(http.StatusOK, h.st.Presences(date))
}

type markPayload struct {
	StudentID string `json:"student_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Present   bool   `json:"present"`
}

// POST /attendance/mark
// One record per (student, day): marking twice overwrites the present flag.
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var req markPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	rec, err := h.st.MarkPresence(currentUser(c), req.StudentID, req.Date, req.Present)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, rec)
}
