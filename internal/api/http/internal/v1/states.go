package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initStatesRoutes(api *gin.RouterGroup) {
	states := api.Group("/states")
	{
		states.GET("", h.getStates)
		states.POST("", h.createState)
		states.GET("/:state_id", h.getStateByID)
		states.PUT("/:state_id", h.updateState)
		states.DELETE("/:state_id", h.deleteState)
	}
}

// stateRequest documents the accepted body; handlers read bodies as
// free-form objects.
type stateRequest struct {
	Name string `json:"name"`
}

// @Summary Get States
// @Tags States
// @Description Get all states
// @ModuleID getStates
// @Produce  json
// @Success 200 {object} []domain.State
// @Failure 500 {object} ErrorStruct
// @Router /states [get]
func (h *Handler) getStates(c *gin.Context) {
	states, err := h.services.States.GetAll(c.Request.Context(), getStore(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	listResponse(c, states)
}

// @Summary Create State
// @Tags States
// @Description Create a state
// @ModuleID createState
// @Accept  json
// @Produce  json
// @Param input body stateRequest true "State"
// @Success 201 {object} domain.State
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /states [post]
func (h *Handler) createState(c *gin.Context) {
	state, err := h.services.States.Create(c.Request.Context(), getStore(c), readBody(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusCreated, state)
}

// @Summary Get State By ID
// @Tags States
// @Description Get a state
// @ModuleID getStateByID
// @Produce  json
// @Param state_id path string true "State ID"
// @Success 200 {object} domain.State
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /states/{state_id} [get]
func (h *Handler) getStateByID(c *gin.Context) {
	state, err := h.services.States.GetOneByID(c.Request.Context(), getStore(c), c.Param("state_id"))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusOK, state)
}

// @Summary Update State
// @Tags States
// @Description Update a state; id and timestamps are ignored
// @ModuleID updateState
// @Accept  json
// @Produce  json
// @Param state_id path string true "State ID"
// @Param input body stateRequest true "Fields to change"
// @Success 200 {object} domain.State
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /states/{state_id} [put]
func (h *Handler) updateState(c *gin.Context) {
	state, err := h.services.States.Update(c.Request.Context(), getStore(c), c.Param("state_id"), readBody(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusOK, state)
}

// @Summary Delete State
// @Tags States
// @Description Delete a state with its cities and everything in them
// @ModuleID deleteState
// @Produce  json
// @Param state_id path string true "State ID"
// @Success 200 {object} DeletedStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /states/{state_id} [delete]
func (h *Handler) deleteState(c *gin.Context) {
	if err := h.services.States.Delete(c.Request.Context(), getStore(c), c.Param("state_id")); err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, DeletedStruct{})
}
