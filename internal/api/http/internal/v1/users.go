package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("", h.getUsers)
		users.POST("", h.createUser)
		users.GET("/:user_id", h.getUserByID)
		users.PUT("/:user_id", h.updateUser)
		users.DELETE("/:user_id", h.deleteUser)
	}
}

type userRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// @Summary Get Users
// @Tags Users
// @Description Get all users
// @ModuleID getUsers
// @Produce  json
// @Success 200 {object} []domain.User
// @Failure 500 {object} ErrorStruct
// @Router /users [get]
func (h *Handler) getUsers(c *gin.Context) {
	users, err := h.services.Users.GetAll(c.Request.Context(), getStore(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	listResponse(c, users)
}

// @Summary Create User
// @Tags Users
// @Description Create a user
// @ModuleID createUser
// @Accept  json
// @Produce  json
// @Param input body userRequest true "User"
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	user, err := h.services.Users.Create(c.Request.Context(), getStore(c), readBody(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusCreated, user)
}

// @Summary Get User By ID
// @Tags Users
// @Description Get a user
// @ModuleID getUserByID
// @Produce  json
// @Param user_id path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /users/{user_id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	user, err := h.services.Users.GetOneByID(c.Request.Context(), getStore(c), c.Param("user_id"))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusOK, user)
}

// @Summary Update User
// @Tags Users
// @Description Update a user; id, email and timestamps are ignored
// @ModuleID updateUser
// @Accept  json
// @Produce  json
// @Param user_id path string true "User ID"
// @Param input body userRequest true "Fields to change"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /users/{user_id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	user, err := h.services.Users.Update(c.Request.Context(), getStore(c), c.Param("user_id"), readBody(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusOK, user)
}

// @Summary Delete User
// @Tags Users
// @Description Delete a user with their places and reviews
// @ModuleID deleteUser
// @Produce  json
// @Param user_id path string true "User ID"
// @Success 200 {object} DeletedStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /users/{user_id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.services.Users.Delete(c.Request.Context(), getStore(c), c.Param("user_id")); err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, DeletedStruct{})
}
