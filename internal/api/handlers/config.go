package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"drone-vision-go/internal/config"
	"drone-vision-go/internal/logging"
)

// ConfigHandler serves the runtime configuration endpoints.
type ConfigHandler struct {
	store *config.Store
}

func NewConfigHandler(store *config.Store) *ConfigHandler {
	return &ConfigHandler{store: store}
}

// Get godoc
// @Summary Current runtime configuration
// @Tags config
// @Produce json
// @Success 200 {object} config.Settings
// @Router /config [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Get())
}

// Update godoc
// @Summary Update runtime configuration
// @Description Applies a partial update; unknown keys are ignored and an out-of-range value rejects the whole update
// @Tags config
// @Accept json
// @Produce json
// @Param settings body config.Settings true "Partial settings"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /config [post]
func (h *ConfigHandler) Update(c *gin.Context) {
	var partial map[string]json.RawMessage
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	updated, err := h.store.Update(partial)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	logging.Info(c).Interface("config", updated).Msg("runtime configuration updated")
	c.JSON(http.StatusOK, gin.H{
		"status": "Configuration updated",
		"config": updated,
	})
}
