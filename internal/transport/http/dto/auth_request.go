package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/finadvise/auth-service/internal/domain"
)

var validate = validator.New()

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate collapses every field failure into the single client message the
// login contract allows.
func (r *LoginRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return domain.ErrCredentialsRequired()
	}
	return nil
}
