package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mcikids/portal/models"
	"github.com/mcikids/portal/store"
)

type FeedHandler struct {
	st *store.Store
}

func NewFeedHandler(st *store.Store) *FeedHandler { return &FeedHandler{st: st} }

// GET /feed?author=
// Visibility depends on who asks: leaders see everything, everyone else
// sees public posts plus posts that mention or were authored by them.
// Guests (no token) see public posts only.
func (h *FeedHandler) List(c echo.Context) error {
	author := strings.TrimSpace(c.QueryParam("author"))
	return c.JSON(http.StatusOK, h.st.VisibleFeed(currentUser(c), author))
}

// GET /mural
func (h *FeedHandler) Mural(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.PublicFeed())
}

type postPayload struct {
	Text     string          `json:"text"`
	Public   bool            `json:"public"`
	Mentions []string        `json:"mentions"`
	Kind     models.PostKind `json:"kind"` // aviso | evento | escala
}

// POST /feed
func (h *FeedHandler) Create(c echo.Context) error {
	var req postPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	item, err := h.st.AddPost(currentUser(c), req.Text, req.Public, req.Mentions, req.Kind)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, item)
}

type reactPayload struct {
	Kind models.ReactionKind `json:"kind"` // gostei | coracao | festa
}

// POST /feed/:id/react
func (h *FeedHandler) React(c echo.Context) error {
	var req reactPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	item, err := h.st.React(currentUser(c), c.Param("id"), req.Kind)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, item)
}

type commentPayload struct {
	Text string `json:"text"`
}

// POST /feed/:id/comments
func (h *FeedHandler) Comment(c echo.Context) error {
	var req commentPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	item, err := h.st.AddComment(currentUser(c), c.Param("id"), req.Text)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, item)
}
