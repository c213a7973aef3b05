package enroll

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/Tahsina2226/course-event-management/core/batch"
	"github.com/Tahsina2226/course-event-management/core/session"
)

// Status classifies the result of an enrollment attempt.
type Status int

const (
	StatusEnrolled Status = iota
	StatusNotAuthorized
	StatusDepartmentConflict
	StatusRemoteError
)

func (s Status) String() string {
	switch s {
	case StatusEnrolled:
		return "enrolled"
	case StatusNotAuthorized:
		return "not authorized"
	case StatusDepartmentConflict:
		return "department conflict"
	default:
		return "remote error"
	}
}

// Outcome is the result of an enrollment attempt.
type Outcome struct {
	Status Status
	// Department is the batch department on success, or the already-held
	// department on a conflict.
	Department string
	// Message is the backend confirmation on success.
	Message string
}

// ErrNotAuthorized is returned when the session is anonymous or an admin.
var ErrNotAuthorized = errors.New("only logged-in students may enroll")

// ConflictError is returned when the session already holds a different
// department. There is no unenroll operation, so the rule is terminal.
type ConflictError struct {
	Department string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("already enrolled in the %s department", e.Department)
}

type (
	// API is the remote enrollment recorder.
	API interface {
		Enroll(ctx context.Context, email string, batchID int) (message string, err error)
	}

	// SessionStore is the slice of session.Service the engine needs.
	SessionStore interface {
		Current() session.Session
		RecordEnrollment(department string) (session.Session, error)
	}

	// Engine decides whether the current session may enroll in a batch,
	// and records the outcome. The decision is made purely against
	// client-held state; the backend is a recorder, not the authority.
	Engine struct {
		api      API
		sessions SessionStore
	}
)

func NewEngine(api API, sessions SessionStore) *Engine {
	return &Engine{api: api, sessions: sessions}
}

// Evaluate applies the enrollment rules without side effects.
// A nil error means the attempt may proceed to the backend.
func Evaluate(sess session.Session, b batch.Batch) error {
	if !sess.CanEnroll() {
		return ErrNotAuthorized
	}
	if existing := sess.EnrolledDepartment; existing != "" && existing != b.Department {
		return &ConflictError{Department: existing}
	}
	return nil
}

// Attempt runs the full enrollment: rule check, remote call, then the
// durable department flag. Rule violations never reach the backend;
// a remote failure never mutates department state. Re-enrolling in the
// already-held department always re-issues the remote call.
func (eng *Engine) Attempt(ctx context.Context, b batch.Batch) (Outcome, error) {
	sess := eng.sessions.Current()

	if err := Evaluate(sess, b); err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			return Outcome{Status: StatusDepartmentConflict, Department: conflict.Department}, err
		}
		return Outcome{Status: StatusNotAuthorized}, err
	}

	msg, err := eng.api.Enroll(ctx, sess.Email, b.ID)
	if err != nil {
		return Outcome{Status: StatusRemoteError}, errors.Wrap(err, "enrolling")
	}
	if msg == "" {
		msg = fmt.Sprintf("You are now enrolled in %s", b.Department)
	}

	outcome := Outcome{Status: StatusEnrolled, Department: b.Department, Message: msg}
	if _, err := eng.sessions.RecordEnrollment(b.Department); err != nil {
		// enrolled remotely; only the local flag failed to stick
		return outcome, errors.Wrap(err, "recording enrollment")
	}
	return outcome, nil
}
