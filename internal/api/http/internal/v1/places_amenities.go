package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get Place Amenities
// @Tags Places
// @Description Get the amenities linked to a place
// @ModuleID getPlaceAmenities
// @Produce  json
// @Param place_id path string true "Place ID"
// @Success 200 {object} []domain.Amenity
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /places/{place_id}/amenities [get]
func (h *Handler) getPlaceAmenities(c *gin.Context) {
	amenities, err := h.services.Places.GetAmenities(c.Request.Context(), getStore(c), c.Param("place_id"))
	if err != nil {
		errorResponse(c, err)
		return
	}
	listResponse(c, amenities)
}

// @Summary Link Place Amenity
// @Tags Places
// @Description Link an amenity to a place. Answers 200 when it was already linked.
// @ModuleID linkPlaceAmenity
// @Produce  json
// @Param place_id path string true "Place ID"
// @Param amenity_id path string true "Amenity ID"
// @Success 200 {object} domain.Amenity
// @Success 201 {object} domain.Amenity
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /places/{place_id}/amenities/{amenity_id} [post]
func (h *Handler) linkPlaceAmenity(c *gin.Context) {
	amenity, created, err := h.services.Places.LinkAmenity(c.Request.Context(), getStore(c), c.Param("place_id"), c.Param("amenity_id"))
	if err != nil {
		errorResponse(c, err)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	entityResponse(c, code, amenity)
}

// @Summary Unlink Place Amenity
// @Tags Places
// @Description Unlink an amenity from a place
// @ModuleID unlinkPlaceAmenity
// @Produce  json
// @Param place_id path string true "Place ID"
// @Param amenity_id path string true "Amenity ID"
// @Success 200 {object} DeletedStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /places/{place_id}/amenities/{amenity_id} [delete]
func (h *Handler) unlinkPlaceAmenity(c *gin.Context) {
	if err := h.services.Places.UnlinkAmenity(c.Request.Context(), getStore(c), c.Param("place_id"), c.Param("amenity_id")); err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, DeletedStruct{})
}
