package enroll

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Tahsina2226/course-event-management/core/batch"
	"github.com/Tahsina2226/course-event-management/core/session"
)

type fakeEnrollAPI struct {
	message string
	err     error
	calls   int
}

func (f *fakeEnrollAPI) Enroll(ctx context.Context, email string, batchID int) (string, error) {
	f.calls++
	return f.message, f.err
}

type fakeSessionStore struct {
	sess      session.Session
	recordErr error
	recorded  []string
}

func (f *fakeSessionStore) Current() session.Session { return f.sess }

func (f *fakeSessionStore) RecordEnrollment(department string) (session.Session, error) {
	if f.recordErr != nil {
		return session.Session{}, f.recordErr
	}
	f.recorded = append(f.recorded, department)
	f.sess.EnrolledDepartment = department
	return f.sess, nil
}

func userSession(dept string) session.Session {
	return session.Session{Token: "tok", Email: "student@test.edu", Role: session.RoleUser, EnrolledDepartment: dept}
}

var csBatch = batch.Batch{ID: 7, Name: "CS-2024", Department: "CS", Semester: "Fall 2024"}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		sess    session.Session
		b       batch.Batch
		wantErr error
	}{
		{name: "anonymous", sess: session.Session{Role: session.RoleGuest}, b: csBatch, wantErr: ErrNotAuthorized},
		{name: "admin", sess: session.Session{Token: "tok", Role: session.RoleAdmin}, b: csBatch, wantErr: ErrNotAuthorized},
		{name: "unenrolled user", sess: userSession(""), b: csBatch},
		{name: "same department", sess: userSession("CS"), b: csBatch},
		{name: "different department", sess: userSession("EEE"), b: csBatch, wantErr: &ConflictError{Department: "EEE"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Evaluate(tt.sess, tt.b)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			var conflict *ConflictError
			if errors.As(tt.wantErr, &conflict) {
				var got *ConflictError
				assert.True(t, errors.As(err, &got))
				assert.Equal(t, conflict.Department, got.Department)
			} else {
				assert.Equal(t, tt.wantErr, err)
			}
		})
	}
}

func TestEngine_Attempt_success(t *testing.T) {
	api := &fakeEnrollAPI{message: "Enrollment recorded"}
	store := &fakeSessionStore{sess: userSession("")}
	eng := NewEngine(api, store)

	outcome, err := eng.Attempt(context.Background(), csBatch)
	assert.NoError(t, err)
	assert.Equal(t, StatusEnrolled, outcome.Status)
	assert.Equal(t, "CS", outcome.Department)
	assert.Equal(t, "Enrollment recorded", outcome.Message)
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, []string{"CS"}, store.recorded)
	assert.Equal(t, "CS", store.sess.EnrolledDepartment)
}

func TestEngine_Attempt_departmentConflict(t *testing.T) {
	api := &fakeEnrollAPI{}
	store := &fakeSessionStore{sess: userSession("CS")}
	eng := NewEngine(api, store)

	outcome, err := eng.Attempt(context.Background(), batch.Batch{ID: 9, Department: "EEE"})
	assert.Error(t, err)
	assert.Equal(t, StatusDepartmentConflict, outcome.Status)
	assert.Equal(t, "CS", outcome.Department, "outcome carries the already-held department")
	// the rule fires before any remote call and leaves state untouched
	assert.Equal(t, 0, api.calls)
	assert.Empty(t, store.recorded)
	assert.Equal(t, "CS", store.sess.EnrolledDepartment)
}

func TestEngine_Attempt_notAuthorized(t *testing.T) {
	for _, sess := range []session.Session{
		{Role: session.RoleGuest},
		{Token: "tok", Email: "boss@test.edu", Role: session.RoleAdmin},
	} {
		api := &fakeEnrollAPI{}
		store := &fakeSessionStore{sess: sess}
		eng := NewEngine(api, store)

		outcome, err := eng.Attempt(context.Background(), csBatch)
		assert.Equal(t, ErrNotAuthorized, errors.Cause(err))
		assert.Equal(t, StatusNotAuthorized, outcome.Status)
		assert.Equal(t, 0, api.calls)
	}
}

func TestEngine_Attempt_remoteFailure(t *testing.T) {
	boom := errors.New("backend down")
	api := &fakeEnrollAPI{err: boom}
	store := &fakeSessionStore{sess: userSession("")}
	eng := NewEngine(api, store)

	outcome, err := eng.Attempt(context.Background(), csBatch)
	assert.Equal(t, boom, errors.Cause(err))
	assert.Equal(t, StatusRemoteError, outcome.Status)
	// a remote failure never mutates department state
	assert.Empty(t, store.recorded)
	assert.Equal(t, "", store.sess.EnrolledDepartment)
}

func TestEngine_Attempt_reEnrollSameDepartment(t *testing.T) {
	// no client-side dedup: the remote call is re-issued every time
	api := &fakeEnrollAPI{}
	store := &fakeSessionStore{sess: userSession("CS")}
	eng := NewEngine(api, store)

	for i := 0; i < 2; i++ {
		outcome, err := eng.Attempt(context.Background(), batch.Batch{ID: 12, Department: "CS"})
		assert.NoError(t, err)
		assert.Equal(t, StatusEnrolled, outcome.Status)
	}
	assert.Equal(t, 2, api.calls)
	assert.Equal(t, "CS", store.sess.EnrolledDepartment)
}

func TestEngine_Attempt_defaultMessage(t *testing.T) {
	api := &fakeEnrollAPI{} // backend sent no message
	store := &fakeSessionStore{sess: userSession("")}
	eng := NewEngine(api, store)

	outcome, err := eng.Attempt(context.Background(), csBatch)
	assert.NoError(t, err)
	assert.Equal(t, "You are now enrolled in CS", outcome.Message)
}
