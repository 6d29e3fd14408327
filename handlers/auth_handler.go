package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"studyshare-backend/auth"
	"studyshare-backend/common"
	"studyshare-backend/config"
	"studyshare-backend/repository"
	"studyshare-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const stateCookie = "oauth_state"

// AuthHandler handles sign-in, sign-out and profile endpoints
type AuthHandler struct {
	accounts *service.AccountService
	provider *auth.GoogleProvider
	cfg      *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts *service.AccountService, provider *auth.GoogleProvider, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		provider: provider,
		cfg:      cfg,
	}
}

// GoogleLogin handles GET /api/auth/google
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state, err := auth.NewState()
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 300, "/", "", h.cfg.CookieSecure, true)
	c.Redirect(http.StatusTemporaryRedirect, h.provider.AuthCodeURL(state))
}

// GoogleCallback handles GET /api/auth/google/callback
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	profile, err := h.provider.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		slog.Error("oauth exchange failed", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication failed"})
		return
	}

	user, err := h.accounts.SignIn(c.Request.Context(), profile.Email, profile.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.SignToken(user.ID.String(), user.Email, []byte(h.cfg.JWTSecret), h.cfg.TokenTTL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, int(h.cfg.TokenTTL.Seconds()), "/", "", h.cfg.CookieSecure, true)
	c.SetCookie(stateCookie, "", -1, "/", "", h.cfg.CookieSecure, true)
	c.Redirect(http.StatusFound, h.cfg.FrontendURL)
}

// Me handles GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	id, err := uuid.Parse(auth.UserID(c))
	if err != nil {
		respondError(c, common.ErrInvalidCredential)
		return
	}

	user, err := h.accounts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfileRequest represents the mutable profile fields
type UpdateProfileRequest struct {
	Name       string  `json:"name"`
	College    *string `json:"college"`
	Phone      *string `json:"phone"`
	DegreeYear *string `json:"degree_year"`
	About      *string `json:"about"`
}

// UpdateProfile handles POST /api/update-profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", common.ErrValidation, err.Error()))
		return
	}
	if req.Name == "" {
		respondError(c, fmt.Errorf("%w: name is required", common.ErrValidation))
		return
	}

	id, err := uuid.Parse(auth.UserID(c))
	if err != nil {
		respondError(c, common.ErrInvalidCredential)
		return
	}

	_, err = h.accounts.UpdateProfile(c.Request.Context(), id, repository.ProfileUpdate{
		Name:       req.Name,
		College:    req.College,
		Phone:      req.Phone,
		DegreeYear: req.DegreeYear,
		About:      req.About,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.cfg.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PublicUser handles GET /api/user/:id
func (h *AuthHandler) PublicUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, common.ErrNotFound)
		return
	}

	user, err := h.accounts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
