package v1

import (
	"github.com/vibe-gaming/hbnb/internal/service"
	"github.com/vibe-gaming/hbnb/internal/storage"

	"github.com/gin-gonic/gin"
)

// @title HBnB API
// @version 1.0
// @description Rental listings API: states, cities, amenities, places, reviews and users.

// @BasePath /api/v1

type Handler struct {
	services *service.Services
	provider *storage.Provider
}

func NewHandler(services *service.Services, provider *storage.Provider) *Handler {
	return &Handler{
		services: services,
		provider: provider,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1", h.storeSessionMiddleware)

	h.initIndexRoutes(v1)
	h.initStatesRoutes(v1)
	h.initCitiesRoutes(v1)
	h.initAmenitiesRoutes(v1)
	h.initUsersRoutes(v1)
	h.initPlacesRoutes(v1)
	h.initReviewsRoutes(v1)
}
