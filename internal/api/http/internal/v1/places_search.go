package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/vibe-gaming/hbnb/internal/service"
)

// @Summary Search Places
// @Tags Places
// @Description Places in the given states or cities that offer every listed amenity.
// @Description An empty object returns every place.
// @ModuleID searchPlaces
// @Accept  json
// @Produce  json
// @Param input body service.PlaceFilters true "Filters"
// @Success 200 {object} []domain.Place
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /places_search [post]
func (h *Handler) searchPlaces(c *gin.Context) {
	if c.ContentType() != binding.MIMEJSON {
		errorResponse(c, service.ErrNotJSON)
		return
	}

	var filters service.PlaceFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		validationErrorResponse(c, err)
		return
	}

	places, err := h.services.Places.Search(c.Request.Context(), getStore(c), filters)
	if err != nil {
		errorResponse(c, err)
		return
	}
	listResponse(c, places)
}
