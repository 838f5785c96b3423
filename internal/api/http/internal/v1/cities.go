package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initCitiesRoutes(api *gin.RouterGroup) {
	api.GET("/states/:state_id/cities", h.getCitiesByState)
	api.POST("/states/:state_id/cities", h.createCity)

	cities := api.Group("/cities")
	{
		cities.GET("/:city_id", h.getCityByID)
		cities.PUT("/:city_id", h.updateCity)
		cities.DELETE("/:city_id", h.deleteCity)
	}
}

type cityRequest struct {
	Name string `json:"name"`
}

// @Summary Get Cities
// @Tags Cities
// @Description Get the cities of a state
// @ModuleID getCitiesByState
// @Produce  json
// @Param state_id path string true "State ID"
// @Success 200 {object} []domain.City
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /states/{state_id}/cities [get]
func (h *Handler) getCitiesByState(c *gin.Context) {
	cities, err := h.services.Cities.GetAllByState(c.Request.Context(), getStore(c), c.Param("state_id"))
	if err != nil {
		errorResponse(c, err)
		return
	}
	listResponse(c, cities)
}

// @Summary Create City
// @Tags Cities
// @Description Create a city in a state; state_id comes from the path
// @ModuleID createCity
// @Accept  json
// @Produce  json
// @Param state_id path string true "State ID"
// @Param input body cityRequest true "City"
// @Success 201 {object} domain.City
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /states/{state_id}/cities [post]
func (h *Handler) createCity(c *gin.Context) {
	city, err := h.services.Cities.Create(c.Request.Context(), getStore(c), c.Param("state_id"), readBody(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusCreated, city)
}

// @Summary Get City By ID
// @Tags Cities
// @ModuleID getCityByID
// @Produce  json
// @Param city_id path string true "City ID"
// @Success 200 {object} domain.City
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{city_id} [get]
func (h *Handler) getCityByID(c *gin.Context) {
	city, err := h.services.Cities.GetOneByID(c.Request.Context(), getStore(c), c.Param("city_id"))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusOK, city)
}

// @Summary Update City
// @Tags Cities
// @Description Update a city; state_id cannot be changed
// @ModuleID updateCity
// @Accept  json
// @Produce  json
// @Param city_id path string true "City ID"
// @Param input body cityRequest true "Fields to change"
// @Success 200 {object} domain.City
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{city_id} [put]
func (h *Handler) updateCity(c *gin.Context) {
	city, err := h.services.Cities.Update(c.Request.Context(), getStore(c), c.Param("city_id"), readBody(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusOK, city)
}

// @Summary Delete City
// @Tags Cities
// @Description Delete a city with its places
// @ModuleID deleteCity
// @Produce  json
// @Param city_id path string true "City ID"
// @Success 200 {object} DeletedStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{city_id} [delete]
func (h *Handler) deleteCity(c *gin.Context) {
	if err := h.services.Cities.Delete(c.Request.Context(), getStore(c), c.Param("city_id")); err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, DeletedStruct{})
}
