package session

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type (
	// AuthResponse is the backend's answer to login/register.
	AuthResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	// AuthAPI is the remote authentication surface.
	AuthAPI interface {
		Login(ctx context.Context, email, password string) (AuthResponse, error)
		Register(ctx context.Context, acct NewAccount) (AuthResponse, error)
		// DepartmentLookup fetches the caller's recorded enrollment; best-effort.
		DepartmentLookup(ctx context.Context, email, token string) (string, error)
	}

	// Repository is the durable client-side storage behind the session.
	Repository interface {
		Load() (Session, error)
		// Save persists token, email, role and department.
		// The enrolledDepartment flag is written only via SetEnrolledDepartment.
		Save(sess Session) error
		// Clear removes token, email, role and department. It deliberately
		// leaves enrolledDepartment in place so the one-department rule
		// survives a logout on this client.
		Clear() error
		SetEnrolledDepartment(department string) error
	}

	// Service owns the one active Session per client. All reads and writes
	// go through it; persistence happens before the in-memory session is
	// replaced, so a failed write never leaves partial state behind.
	Service struct {
		api      AuthAPI
		repo     Repository
		validate *validator.Validate

		mu      sync.Mutex
		current Session
	}
)

func NewService(api AuthAPI, repo Repository, validate *validator.Validate) (*Service, error) {
	sess, err := repo.Load()
	if err != nil {
		return nil, errors.Wrap(err, "loading persisted session")
	}
	return &Service{api: api, repo: repo, validate: validate, current: sess}, nil
}

// Current returns the active session.
func (svc *Service) Current() Session {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.current
}

// Login authenticates against the backend and replaces the active session.
// The caller's email is read from the returned token's claims. The
// department lookup is best-effort: on failure the session simply carries
// no server-reported department.
func (svc *Service) Login(ctx context.Context, creds Credentials) (Session, error) {
	if err := creds.Validate(svc.validate); err != nil {
		return Session{}, err
	}

	resp, err := svc.api.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return Session{}, errors.Wrap(err, "logging in")
	}

	var email string
	if claims, err := DecodeClaims(resp.Token); err == nil {
		email = claims.Email
	}

	var department string
	if dept, err := svc.api.DepartmentLookup(ctx, email, resp.Token); err == nil {
		department = dept
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	sess := Session{
		Token:              resp.Token,
		Email:              email,
		Role:               ParseRole(resp.Role),
		Department:         department,
		EnrolledDepartment: svc.current.EnrolledDepartment,
	}
	if err := svc.repo.Save(sess); err != nil {
		return Session{}, errors.Wrap(err, "persisting session")
	}
	svc.current = sess
	return sess, nil
}

// Register creates an account and logs the caller in; no department lookup.
func (svc *Service) Register(ctx context.Context, acct NewAccount) (Session, error) {
	if err := acct.Validate(svc.validate); err != nil {
		return Session{}, err
	}

	resp, err := svc.api.Register(ctx, acct)
	if err != nil {
		return Session{}, errors.Wrap(err, "registering")
	}

	var email string
	if claims, err := DecodeClaims(resp.Token); err == nil {
		email = claims.Email
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	sess := Session{
		Token:              resp.Token,
		Email:              email,
		Role:               ParseRole(resp.Role),
		EnrolledDepartment: svc.current.EnrolledDepartment,
	}
	if err := svc.repo.Save(sess); err != nil {
		return Session{}, errors.Wrap(err, "persisting session")
	}
	svc.current = sess
	return sess, nil
}

// Logout clears the persisted identity and returns the resulting guest
// session. The enrolledDepartment flag survives (see Repository.Clear).
func (svc *Service) Logout() (Session, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if err := svc.repo.Clear(); err != nil {
		return Session{}, errors.Wrap(err, "clearing persisted session")
	}
	svc.current = Session{
		Role:               RoleGuest,
		EnrolledDepartment: svc.current.EnrolledDepartment,
	}
	return svc.current, nil
}

// RecordEnrollment persists a successful enrollment's department and
// updates the active session.
func (svc *Service) RecordEnrollment(department string) (Session, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if err := svc.repo.SetEnrolledDepartment(department); err != nil {
		return Session{}, errors.Wrap(err, "persisting enrolled department")
	}
	svc.current.EnrolledDepartment = department
	return svc.current, nil
}
