package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "condominio/internal/errors"
	"condominio/internal/services"
)

// SettingsHandler handles per-user preference requests
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SetSettingRequest represents the request payload for storing a setting
type SetSettingRequest struct {
	Value string `json:"value" binding:"required,max=500"`
}

// GetSetting handles retrieving a setting
// @Summary     Get a setting
// @Description Get one of the authenticated user's settings by key
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       key path string true "Setting key"
// @Success     200 {object} models.Setting "Setting"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings/{key} [get]
func (h *SettingsHandler) GetSetting(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	key := c.Param("key")
	if key == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing key"))
		return
	}

	setting, err := h.settingsService.Get(userID, key)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

// SetSetting handles storing a setting
// @Summary     Set a setting
// @Description Store one of the authenticated user's settings by key
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       key path string true "Setting key"
// @Param       request body SetSettingRequest true "Setting value"
// @Success     200 {object} models.Setting "Setting stored"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings/{key} [put]
func (h *SettingsHandler) SetSetting(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	key := c.Param("key")
	if key == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing key"))
		return
	}

	var req SetSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	setting, err := h.settingsService.Set(userID, key, req.Value)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}
