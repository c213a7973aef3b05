package session

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Tahsina2226/course-event-management/core"
)

// Role is the closed set of portal roles. Anything the backend sends
// outside this set degrades to RoleGuest at the decode boundary.
type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// RegistrableRoles are the roles a caller may pick at registration.
var RegistrableRoles = []Role{RoleUser, RoleAdmin}

func ParseRole(s string) Role {
	if r := Role(core.CleanString(s, true /* lower */)); r.Known() {
		return r
	}
	return RoleGuest
}

func (r Role) String() string { return string(r) }

// Known reports whether r is one of the defined roles.
func (r Role) Known() bool {
	switch r {
	case RoleGuest, RoleUser, RoleAdmin:
		return true
	}
	return false
}

// Session is the current client identity. The zero value is an
// anonymous session.
type Session struct {
	Token string `json:"token,omitempty"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role,omitempty"`

	// Department is the enrollment the backend reported at login time;
	// advisory only, for display.
	Department string `json:"department,omitempty"`

	// EnrolledDepartment is the department this client last observed a
	// successful enrollment into. It is the authoritative side of the
	// one-department rule and survives logout.
	EnrolledDepartment string `json:"enrolled_department,omitempty"`
}

func (s Session) LoggedIn() bool { return s.Token != "" }

// CanManage reports whether the session may create/edit/delete batches and routines.
func (s Session) CanManage() bool { return s.LoggedIn() && s.Role == RoleAdmin }

// CanEnroll reports whether the session may enroll into a batch.
func (s Session) CanEnroll() bool { return s.LoggedIn() && s.Role == RoleUser }

// CurrentDepartment resolves the two department sources: the locally
// recorded enrollment wins over the login-time server lookup.
func (s Session) CurrentDepartment() string {
	if s.EnrolledDepartment != "" {
		return s.EnrolledDepartment
	}
	return s.Department
}

// Claims is the subset of the backend JWT payload the client reads.
// The client never holds the signing key, so claims are decoded
// without verification; the token itself stays opaque.
type Claims struct {
	jwt.StandardClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

func DecodeClaims(token string) (*Claims, error) {
	claims := new(Claims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parsing token")
	}
	return claims, nil
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return validate.Struct(c)
}

// NewAccount contains information needed to register a new account.
// The role is chosen by the caller; the backend records it as-is.
type NewAccount struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,portalrole"`
	Password string `json:"password" validate:"required"`
}

func (na *NewAccount) Validate(validate *validator.Validate) error {
	na.Name = core.CleanString(na.Name)
	na.Email = core.CleanString(na.Email, true /* lower */)
	na.Role = core.CleanString(na.Role, true /* lower */)
	return validate.Struct(na)
}
