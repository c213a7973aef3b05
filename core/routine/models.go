package routine

import (
	"github.com/go-playground/validator/v10"

	"github.com/Tahsina2226/course-event-management/core"
)

// Routine is one class-routine slot, tied to a batch.
type Routine struct {
	ID         int    `json:"id"`
	CourseName string `json:"course_name"`
	Day        string `json:"day"`
	Time       string `json:"time"`
	Room       string `json:"room"`
	BatchID    int    `json:"batch_id"`
}

// NewRoutine contains information needed to create a Routine.
type NewRoutine struct {
	CourseName string `json:"course_name" validate:"required"`
	Day        string `json:"day" validate:"required,weekday"`
	Time       string `json:"time" validate:"required"`
	Room       string `json:"room" validate:"required"`
	BatchID    int    `json:"batch_id" validate:"required"`
}

func (nr *NewRoutine) Validate(validate *validator.Validate) error {
	nr.CourseName = core.CleanString(nr.CourseName)
	nr.Day = core.CleanString(nr.Day)
	nr.Time = core.CleanString(nr.Time)
	nr.Room = core.CleanString(nr.Room)
	return validate.Struct(nr)
}

// UpdateRoutine defines what may be provided to modify an existing Routine.
type UpdateRoutine struct {
	CourseName string `json:"course_name,omitempty"`
	Day        string `json:"day,omitempty" validate:"omitempty,weekday"`
	Time       string `json:"time,omitempty"`
	Room       string `json:"room,omitempty"`
	BatchID    int    `json:"batch_id,omitempty"`
}

func (ur *UpdateRoutine) Validate(validate *validator.Validate) error {
	ur.CourseName = core.CleanString(ur.CourseName)
	ur.Day = core.CleanString(ur.Day)
	ur.Time = core.CleanString(ur.Time)
	ur.Room = core.CleanString(ur.Room)
	return validate.Struct(ur)
}

func (ur *UpdateRoutine) IsEmpty() bool {
	return ur.CourseName == "" && ur.Day == "" && ur.Time == "" && ur.Room == "" && ur.BatchID == 0
}
