package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initAmenitiesRoutes(api *gin.RouterGroup) {
	amenities := api.Group("/amenities")
	{
		amenities.GET("", h.getAmenities)
		amenities.POST("", h.createAmenity)
		amenities.GET("/:amenity_id", h.getAmenityByID)
		amenities.PUT("/:amenity_id", h.updateAmenity)
		amenities.DELETE("/:amenity_id", h.deleteAmenity)
	}
}

type amenityRequest struct {
	Name string `json:"name"`
}

// @Summary Get Amenities
// @Tags Amenities
// @Description Get all amenities
// @ModuleID getAmenities
// @Produce  json
// @Success 200 {object} []domain.Amenity
// @Failure 500 {object} ErrorStruct
// @Router /amenities [get]
func (h *Handler) getAmenities(c *gin.Context) {
	amenities, err := h.services.Amenities.GetAll(c.Request.Context(), getStore(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	listResponse(c, amenities)
}

// @Summary Create Amenity
// @Tags Amenities
// @Description Create an amenity
// @ModuleID createAmenity
// @Accept  json
// @Produce  json
// @Param input body amenityRequest true "Amenity"
// @Success 201 {object} domain.Amenity
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /amenities [post]
func (h *Handler) createAmenity(c *gin.Context) {
	amenity, err := h.services.Amenities.Create(c.Request.Context(), getStore(c), readBody(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusCreated, amenity)
}

// @Summary Get Amenity By ID
// @Tags Amenities
// @Description Get an amenity
// @ModuleID getAmenityByID
// @Produce  json
// @Param amenity_id path string true "Amenity ID"
// @Success 200 {object} domain.Amenity
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /amenities/{amenity_id} [get]
func (h *Handler) getAmenityByID(c *gin.Context) {
	amenity, err := h.services.Amenities.GetOneByID(c.Request.Context(), getStore(c), c.Param("amenity_id"))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusOK, amenity)
}

// @Summary Update Amenity
// @Tags Amenities
// @Description Update an amenity; id and timestamps are ignored
// @ModuleID updateAmenity
// @Accept  json
// @Produce  json
// @Param amenity_id path string true "Amenity ID"
// @Param input body amenityRequest true "Fields to change"
// @Success 200 {object} domain.Amenity
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /amenities/{amenity_id} [put]
func (h *Handler) updateAmenity(c *gin.Context) {
	amenity, err := h.services.Amenities.Update(c.Request.Context(), getStore(c), c.Param("amenity_id"), readBody(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusOK, amenity)
}

// @Summary Delete Amenity
// @Tags Amenities
// @Description Delete an amenity and unlink it from every place
// @ModuleID deleteAmenity
// @Produce  json
// @Param amenity_id path string true "Amenity ID"
// @Success 200 {object} DeletedStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /amenities/{amenity_id} [delete]
func (h *Handler) deleteAmenity(c *gin.Context) {
	if err := h.services.Amenities.Delete(c.Request.Context(), getStore(c), c.Param("amenity_id")); err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, DeletedStruct{})
}
