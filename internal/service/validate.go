package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/vibe-gaming/hbnb/internal/domain"
)

type checker struct {
	v *validator.Validate
}

func newChecker(v *validator.Validate) *checker {
	return &checker{v: v}
}

// entity reports the first failing field in declaration order.
func (c *checker) entity(e domain.Entity) error {
	return c.translate(c.v.Struct(e))
}

// changed validates an entity after an update. Blanking a required field
// there is an invalid value, not a missing one.
func (c *checker) changed(e domain.Entity) error {
	err := c.entity(e)
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return &domain.InvalidFieldError{Field: missing.Field}
	}
	return err
}

func (c *checker) translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	if fe.Tag() == "required" {
		return &MissingFieldError{Field: fe.Field()}
	}
	return &domain.InvalidFieldError{Field: fe.Field()}
}
