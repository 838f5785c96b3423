package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initIndexRoutes(api *gin.RouterGroup) {
	api.GET("/status", h.getStatus)
	api.GET("/stats", h.getStats)
}

type statusResponse struct {
	Status string `json:"status"`
}

// @Summary Status
// @Tags Index
// @Description Liveness of the API
// @ModuleID getStatus
// @Produce  json
// @Success 200 {object} statusResponse
// @Router /status [get]
func (h *Handler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse{Status: "OK"})
}

// @Summary Stats
// @Tags Index
// @Description Number of stored entities per collection
// @ModuleID getStats
// @Produce  json
// @Success 200 {object} map[string]int
// @Failure 500 {object} ErrorStruct
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.services.Stats.Count(c.Request.Context(), getStore(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
