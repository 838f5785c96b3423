package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initPlacesRoutes(api *gin.RouterGroup) {
	api.GET("/cities/:city_id/places", h.getPlacesByCity)
	api.POST("/cities/:city_id/places", h.createPlace)

	places := api.Group("/places")
	{
		places.GET("/:place_id", h.getPlaceByID)
		places.PUT("/:place_id", h.updatePlace)
		places.DELETE("/:place_id", h.deletePlace)

		places.GET("/:place_id/amenities", h.getPlaceAmenities)
		places.POST("/:place_id/amenities/:amenity_id", h.linkPlaceAmenity)
		places.DELETE("/:place_id/amenities/:amenity_id", h.unlinkPlaceAmenity)
	}

	api.POST("/places_search", h.searchPlaces)
}

// placeRequest documents the accepted body. Amenities are linked through
// their own routes.
type placeRequest struct {
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	NumberRooms     int     `json:"number_rooms"`
	NumberBathrooms int     `json:"number_bathrooms"`
	MaxGuest        int     `json:"max_guest"`
	PriceByNight    int     `json:"price_by_night"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

// @Summary Get Places
// @Tags Places
// @Description Get the places of a city
// @ModuleID getPlacesByCity
// @Produce  json
// @Param city_id path string true "City ID"
// @Success 200 {object} []domain.Place
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{city_id}/places [get]
func (h *Handler) getPlacesByCity(c *gin.Context) {
	places, err := h.services.Places.GetAllByCity(c.Request.Context(), getStore(c), c.Param("city_id"))
	if err != nil {
		errorResponse(c, err)
		return
	}
	listResponse(c, places)
}

// @Summary Create Place
// @Tags Places
// @Description Create a place in a city; city_id comes from the path, user_id must name an existing user
// @ModuleID createPlace
// @Accept  json
// @Produce  json
// @Param city_id path string true "City ID"
// @Param input body placeRequest true "Place"
// @Success 201 {object} domain.Place
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{city_id}/places [post]
func (h *Handler) createPlace(c *gin.Context) {
	place, err := h.services.Places.Create(c.Request.Context(), getStore(c), c.Param("city_id"), readBody(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusCreated, place)
}

// @Summary Get Place By ID
// @Tags Places
// @ModuleID getPlaceByID
// @Produce  json
// @Param place_id path string true "Place ID"
// @Success 200 {object} domain.Place
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /places/{place_id} [get]
func (h *Handler) getPlaceByID(c *gin.Context) {
	place, err := h.services.Places.GetOneByID(c.Request.Context(), getStore(c), c.Param("place_id"))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusOK, place)
}

// @Summary Update Place
// @Tags Places
// @Description Update a place; city_id and user_id cannot be changed
// @ModuleID updatePlace
// @Accept  json
// @Produce  json
// @Param place_id path string true "Place ID"
// @Param input body placeRequest true "Fields to change"
// @Success 200 {object} domain.Place
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /places/{place_id} [put]
func (h *Handler) updatePlace(c *gin.Context) {
	place, err := h.services.Places.Update(c.Request.Context(), getStore(c), c.Param("place_id"), readBody(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusOK, place)
}

// @Summary Delete Place
// @Tags Places
// @Description Delete a place with its reviews
// @ModuleID deletePlace
// @Produce  json
// @Param place_id path string true "Place ID"
// @Success 200 {object} DeletedStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /places/{place_id} [delete]
func (h *Handler) deletePlace(c *gin.Context) {
	if err := h.services.Places.Delete(c.Request.Context(), getStore(c), c.Param("place_id")); err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, DeletedStruct{})
}
