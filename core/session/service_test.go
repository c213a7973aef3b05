package session_test

import (
	"context"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Tahsina2226/course-event-management/core"
	"github.com/Tahsina2226/course-event-management/core/session"
	"github.com/Tahsina2226/course-event-management/storage/localstore/inmem"
)

type fakeAuthAPI struct {
	loginResp    session.AuthResponse
	loginErr     error
	registerResp session.AuthResponse
	registerErr  error
	dept         string
	deptErr      error

	lookupCalls int
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (session.AuthResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, acct session.NewAccount) (session.AuthResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeAuthAPI) DepartmentLookup(ctx context.Context, email, token string) (string, error) {
	f.lookupCalls++
	return f.dept, f.deptErr
}

func makeToken(t *testing.T, email, role string) string {
	claims := &session.Claims{Email: email, Role: role}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("makeToken() failed: %v", err)
	}
	return token
}

func setup(t *testing.T, api session.AuthAPI) (*session.Service, session.Repository) {
	repo := inmem.NewSessionRepository()
	validate, translator := core.NewValidator()
	session.RegisterValidators(validate, translator)
	svc, err := session.NewService(api, repo, validate)
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return svc, repo
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("ok with department lookup", func(t *testing.T) {
		api := &fakeAuthAPI{
			loginResp: session.AuthResponse{Token: makeToken(t, "student@test.edu", "user"), Role: "user"},
			dept:      "CS",
		}
		svc, _ := setup(t, api)

		sess, err := svc.Login(ctx, session.Credentials{Email: "student@test.edu", Password: "pwd"})
		assert.NoError(t, err)
		assert.Equal(t, "student@test.edu", sess.Email)
		assert.Equal(t, session.RoleUser, sess.Role)
		assert.Equal(t, "CS", sess.Department)
		assert.Equal(t, 1, api.lookupCalls)
		assert.Equal(t, sess, svc.Current())
	})

	t.Run("department lookup failure is tolerated", func(t *testing.T) {
		api := &fakeAuthAPI{
			loginResp: session.AuthResponse{Token: makeToken(t, "student@test.edu", "user"), Role: "user"},
			deptErr:   errors.New("boom"),
		}
		svc, _ := setup(t, api)

		sess, err := svc.Login(ctx, session.Credentials{Email: "student@test.edu", Password: "pwd"})
		assert.NoError(t, err)
		assert.Equal(t, "", sess.Department)
	})

	t.Run("rejected credentials publish nothing", func(t *testing.T) {
		api := &fakeAuthAPI{loginErr: errors.New("Invalid email or password")}
		svc, _ := setup(t, api)

		_, err := svc.Login(ctx, session.Credentials{Email: "student@test.edu", Password: "nope"})
		assert.Error(t, err)
		assert.False(t, svc.Current().LoggedIn())
		assert.Equal(t, 0, api.lookupCalls)
	})

	t.Run("validation runs before any remote call", func(t *testing.T) {
		api := &fakeAuthAPI{}
		svc, _ := setup(t, api)

		_, err := svc.Login(ctx, session.Credentials{Email: "not-an-email", Password: "pwd"})
		assert.Error(t, err)
		assert.Equal(t, 0, api.lookupCalls)
	})

	t.Run("local enrollment flag survives a re-login", func(t *testing.T) {
		api := &fakeAuthAPI{
			loginResp: session.AuthResponse{Token: makeToken(t, "student@test.edu", "user"), Role: "user"},
			dept:      "CS",
		}
		_, repo := setup(t, api)
		assert.NoError(t, repo.SetEnrolledDepartment("EEE"))

		// a fresh service picks the stored flag up and keeps it across login
		validate, translator := core.NewValidator()
		session.RegisterValidators(validate, translator)
		svc, err := session.NewService(api, repo, validate)
		assert.NoError(t, err)
		assert.Equal(t, "EEE", svc.Current().EnrolledDepartment)

		sess, err := svc.Login(ctx, session.Credentials{Email: "student@test.edu", Password: "pwd"})
		assert.NoError(t, err)
		assert.Equal(t, "EEE", sess.EnrolledDepartment)
		assert.Equal(t, "EEE", sess.CurrentDepartment(), "local flag wins over the server lookup")
	})
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	api := &fakeAuthAPI{
		registerResp: session.AuthResponse{Token: makeToken(t, "new@test.edu", "user"), Role: "user"},
	}
	svc, _ := setup(t, api)

	sess, err := svc.Register(ctx, session.NewAccount{
		Name:     "New Student",
		Email:    "new@test.edu",
		Role:     "user",
		Password: "pwd",
	})
	assert.NoError(t, err)
	assert.Equal(t, "new@test.edu", sess.Email)
	assert.Equal(t, session.RoleUser, sess.Role)
	// no department lookup on register
	assert.Equal(t, 0, api.lookupCalls)
	assert.Equal(t, "", sess.Department)

	_, err = svc.Register(ctx, session.NewAccount{Name: "X", Email: "x@test.edu", Role: "owner", Password: "pwd"})
	assert.Error(t, err, "roles outside user/admin are rejected")
}

func TestService_Logout_keepsEnrolledDepartment(t *testing.T) {
	ctx := context.Background()
	api := &fakeAuthAPI{
		loginResp: session.AuthResponse{Token: makeToken(t, "student@test.edu", "user"), Role: "user"},
	}
	svc, _ := setup(t, api)

	_, err := svc.Login(ctx, session.Credentials{Email: "student@test.edu", Password: "pwd"})
	assert.NoError(t, err)
	_, err = svc.RecordEnrollment("CS")
	assert.NoError(t, err)

	sess, err := svc.Logout()
	assert.NoError(t, err)
	assert.False(t, sess.LoggedIn())
	assert.Equal(t, session.RoleGuest, sess.Role)
	assert.Equal(t, "", sess.Email)
	// the one-department flag deliberately survives logout
	assert.Equal(t, "CS", sess.EnrolledDepartment)
}
