package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/service"
	"github.com/vibe-gaming/hbnb/pkg/logger"
)

// errorResponse maps a service error onto its status code and message.
func errorResponse(c *gin.Context, err error) {
	var (
		missing *service.MissingFieldError
		invalid *domain.InvalidFieldError
	)

	switch {
	case errors.Is(err, service.ErrNotJSON):
		abort(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &missing):
		abort(c, http.StatusBadRequest, missing.Error())
	case errors.As(err, &invalid):
		abort(c, http.StatusBadRequest, invalid.Error())
	case errors.Is(err, domain.ErrNotFound):
		abort(c, http.StatusNotFound, NotFoundMessage)
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicateEntry):
		logger.Warn("write conflict", zap.String("route", c.FullPath()), zap.Error(err))
		abort(c, http.StatusConflict, ConflictMessage)
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
		abort(c, http.StatusInternalServerError, InternalMessage)
	}
}

func abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorStruct{Error: message})
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		abort(c, http.StatusBadRequest, service.ErrNotJSON.Error())
		return
	}

	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag())}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
		Error:  ValidationErrorMessage,
		Errors: out,
	})
}

func msgForTag(tag string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "entityid":
		return "Must be an entity id"
	}
	return tag
}

// readBody returns the request's JSON object, or nil when the body is not
// one. Services answer a nil body with service.ErrNotJSON once their
// lookups have passed.
func readBody(c *gin.Context) map[string]any {
	if c.ContentType() != binding.MIMEJSON {
		return nil
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil
	}
	return body
}

// entityResponse renders entities in their public encoding, "__class__"
// included.
func entityResponse(c *gin.Context, code int, e domain.Entity) {
	data, err := domain.Encode(domain.Public(e))
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.Data(code, gin.MIMEJSON+"; charset=utf-8", data)
}

func listResponse[T domain.Entity](c *gin.Context, items []T) {
	out := make([]json.RawMessage, 0, len(items))
	for _, e := range items {
		data, err := domain.Encode(domain.Public(e))
		if err != nil {
			errorResponse(c, err)
			return
		}
		out = append(out, data)
	}

	data, err := json.Marshal(out)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.Data(http.StatusOK, gin.MIMEJSON+"; charset=utf-8", data)
}
