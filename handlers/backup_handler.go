package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcikids/portal/database"
	"github.com/mcikids/portal/store"
)

// maxImportSize caps uploaded backup files.
const maxImportSize = 16 << 20

type BackupHandler struct {
	st *store.Store
}

func NewBackupHandler(st *store.Store) *BackupHandler { return &BackupHandler{st: st} }

// GET /admin/backup/export
// Downloads the whole snapshot as a pretty-printed JSON document.
func (h *BackupHandler) Export(c echo.Context) error {
	data, name, err := database.ExportJSON(h.st.Snapshot())
	if err != nil {
		return fail(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

// POST /admin/backup/import
// Replaces all current data with the uploaded document, all-or-nothing.
// The client confirms the destructive replacement before calling.
func (h *BackupHandler) Import(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImportSize))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "IMPORT_FAILED"})
	}
	snap, err := database.ImportJSON(body)
	if err != nil {
		return fail(err)
	}
	h.st.ReplaceAll(snap)
	return c.JSON(http.StatusOK, map[string]any{"restored": true})
}
