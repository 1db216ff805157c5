package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/warungpo/preorder_api/internal/service"
	"github.com/warungpo/preorder_api/internal/utils"
)

// SettingsHandler serves store settings for both storefront and dashboard.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles GET /api/settings. The storefront reads the PO window, terms
// and landing copy from here; values the admin never set come back as
// defaults.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Settings retrieved", settings)
}

// Update handles PUT /api/admin/settings. Accepts a partial key/value map;
// unknown keys are ignored.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		return
	}
	if len(req) == 0 {
		utils.Error(c, 400, "INVALID_REQUEST", "No settings provided")
		return
	}

	if err := h.settingsService.Update(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Settings updated", settings)
}
