package batch

import (
	"github.com/go-playground/validator/v10"

	"github.com/Tahsina2226/course-event-management/core"
)

// Batch is an academic cohort, scoped to a department and semester.
type Batch struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Semester   string `json:"semester"`
}

// NewBatch contains information needed to create a Batch.
type NewBatch struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required"`
	Semester   string `json:"semester" validate:"required"`
}

func (nb *NewBatch) Validate(validate *validator.Validate) error {
	nb.Name = core.CleanString(nb.Name)
	nb.Department = core.CleanString(nb.Department)
	nb.Semester = core.CleanString(nb.Semester)
	return validate.Struct(nb)
}

// UpdateBatch defines what may be provided to modify an existing Batch.
// Empty fields are left untouched by the backend.
type UpdateBatch struct {
	Name       string `json:"name,omitempty"`
	Department string `json:"department,omitempty"`
	Semester   string `json:"semester,omitempty"`
}

func (ub *UpdateBatch) Validate(validate *validator.Validate) error {
	ub.Name = core.CleanString(ub.Name)
	ub.Department = core.CleanString(ub.Department)
	ub.Semester = core.CleanString(ub.Semester)
	return validate.Struct(ub)
}

func (ub *UpdateBatch) IsEmpty() bool {
	return ub.Name == "" && ub.Department == "" && ub.Semester == ""
}
