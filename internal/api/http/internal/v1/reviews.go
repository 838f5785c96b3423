package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initReviewsRoutes(api *gin.RouterGroup) {
	api.GET("/places/:place_id/reviews", h.getReviewsByPlace)
	api.POST("/places/:place_id/reviews", h.createReview)

	reviews := api.Group("/reviews")
	{
		reviews.GET("/:review_id", h.getReviewByID)
		reviews.PUT("/:review_id", h.updateReview)
		reviews.DELETE("/:review_id", h.deleteReview)
	}
}

type reviewRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// @Summary Get Reviews
// @Tags Reviews
// @Description Get the reviews of a place
// @ModuleID getReviewsByPlace
// @Produce  json
// @Param place_id path string true "Place ID"
// @Success 200 {object} []domain.Review
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /places/{place_id}/reviews [get]
func (h *Handler) getReviewsByPlace(c *gin.Context) {
	reviews, err := h.services.Reviews.GetAllByPlace(c.Request.Context(), getStore(c), c.Param("place_id"))
	if err != nil {
		errorResponse(c, err)
		return
	}
	listResponse(c, reviews)
}

// @Summary Create Review
// @Tags Reviews
// @Description Create a review of a place; place_id comes from the path, user_id must name an existing user
// @ModuleID createReview
// @Accept  json
// @Produce  json
// @Param place_id path string true "Place ID"
// @Param input body reviewRequest true "Review"
// @Success 201 {object} domain.Review
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /places/{place_id}/reviews [post]
func (h *Handler) createReview(c *gin.Context) {
	review, err := h.services.Reviews.Create(c.Request.Context(), getStore(c), c.Param("place_id"), readBody(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusCreated, review)
}

// @Summary Get Review By ID
// @Tags Reviews
// @ModuleID getReviewByID
// @Produce  json
// @Param review_id path string true "Review ID"
// @Success 200 {object} domain.Review
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /reviews/{review_id} [get]
func (h *Handler) getReviewByID(c *gin.Context) {
	review, err := h.services.Reviews.GetOneByID(c.Request.Context(), getStore(c), c.Param("review_id"))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusOK, review)
}

// @Summary Update Review
// @Tags Reviews
// @Description Update a review; place_id and user_id cannot be changed
// @ModuleID updateReview
// @Accept  json
// @Produce  json
// @Param review_id path string true "Review ID"
// @Param input body reviewRequest true "Fields to change"
// @Success 200 {object} domain.Review
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /reviews/{review_id} [put]
func (h *Handler) updateReview(c *gin.Context) {
	review, err := h.services.Reviews.Update(c.Request.Context(), getStore(c), c.Param("review_id"), readBody(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	entityResponse(c, http.StatusOK, review)
}

// @Summary Delete Review
// @Tags Reviews
// @ModuleID deleteReview
// @Produce  json
// @Param review_id path string true "Review ID"
// @Success 200 {object} DeletedStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /reviews/{review_id} [delete]
func (h *Handler) deleteReview(c *gin.Context) {
	if err := h.services.Reviews.Delete(c.Request.Context(), getStore(c), c.Param("review_id")); err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, DeletedStruct{})
}
