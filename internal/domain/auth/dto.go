package auth

import (
	"github.com/rhpro/folha-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email string `json:"email"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	SuperAdmin  bool   `json:"superAdmin"`
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}
