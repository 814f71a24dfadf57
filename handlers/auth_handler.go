package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcikids/portal/config"
	"github.com/mcikids/portal/middlewares"
	"github.com/mcikids/portal/models"
)

const sessionTTL = 12 * time.Hour

type AuthHandler struct {
	secret         string
	leaderUsername string
	leaderHash     []byte
	leaderName     string
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.LeaderPassword), bcrypt.DefaultCost)
	return &AuthHandler{
		secret:         cfg.JWTSecret,
		leaderUsername: cfg.LeaderUsername,
		leaderHash:     hash,
		leaderName:     cfg.LeaderName,
	}
}

func (h *AuthHandler) signJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := middlewares.Claims{
		UID:  user.ID,
		Role: user.Role,
		Name: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.secret))
}

type leaderLoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /auth/leader/login
// The leader account is fixed: one configured username/password pair.
func (h *AuthHandler) LeaderLogin(c echo.Context) error {
	var req leaderLoginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	username := strings.TrimSpace(strings.ToLower(req.Username))
	if username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	if username != h.leaderUsername ||
		bcrypt.CompareHashAndPassword(h.leaderHash, []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}

	user := &models.User{ID: "lider-1", Name: h.leaderName, Role: models.RoleLeader}
	token, err := h.signJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_SIGNING_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": user})
}

type helperLoginReq struct {
	Name string `json:"name"`
}

// POST /auth/helper/login
// Helpers have no stored account: they state a name and get a session.
func (h *AuthHandler) HelperLogin(c echo.Context) error {
	var req helperLoginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	user := &models.User{
		ID:   "aux-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name: name,
		Role: models.RoleHelper,
	}
	token, err := h.signJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_SIGNING_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": user})
}
