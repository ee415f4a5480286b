package client

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/pageza/fridgechef/internal/category"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return category.Valid(category.Key(fl.Field().String()))
	})
	return v
}

// check validates a decoded response body against its schema tags
func (c *Client) check(v any) error {
	if err := c.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
