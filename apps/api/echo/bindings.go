package echoapi

import (
	"github.com/go-playground/validator/v10"

	"github.com/Tahsina2226/course-event-management/core"
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Role     string `json:"role" validate:"required,portalrole"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	EnrollRequest struct {
		UserEmail string `json:"userEmail" validate:"required,email"`
		BatchID   int    `json:"batchId" validate:"required"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}

	DepartmentResponse struct {
		BatchDepartment string `json:"batch_department"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return validate.Struct(lr)
}

func (rr *RegisterRequest) Validate(validate *validator.Validate) error {
	rr.Name = core.CleanString(rr.Name)
	rr.Email = core.CleanString(rr.Email, true /* lower */)
	rr.Role = core.CleanString(rr.Role, true /* lower */)
	return validate.Struct(rr)
}

func (er *EnrollRequest) Validate(validate *validator.Validate) error {
	er.UserEmail = core.CleanString(er.UserEmail, true /* lower */)
	return validate.Struct(er)
}
