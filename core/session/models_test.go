package session

import (
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func makeToken(t *testing.T, email, role string) string {
	claims := &Claims{Email: email, Role: role}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("makeToken() failed: %v", err)
	}
	return token
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"Admin", RoleAdmin},
		{" ADMIN ", RoleAdmin},
		{"user", RoleUser},
		{"guest", RoleGuest},
		{"", RoleGuest},
		{"superuser", RoleGuest}, // unknown roles degrade to guest
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRole(tt.in), "ParseRole(%q)", tt.in)
	}
}

func TestSession_permissions(t *testing.T) {
	tests := []struct {
		name                 string
		sess                 Session
		canManage, canEnroll bool
	}{
		{name: "anonymous", sess: Session{Role: RoleGuest}},
		{name: "admin", sess: Session{Token: "tok", Role: RoleAdmin}, canManage: true},
		{name: "user", sess: Session{Token: "tok", Role: RoleUser}, canEnroll: true},
		{name: "stale role without token", sess: Session{Role: RoleAdmin}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canManage, tt.sess.CanManage())
			assert.Equal(t, tt.canEnroll, tt.sess.CanEnroll())
		})
	}
}

func TestSession_CurrentDepartment(t *testing.T) {
	// the locally recorded enrollment wins over the login-time lookup
	sess := Session{Department: "CS", EnrolledDepartment: "EEE"}
	assert.Equal(t, "EEE", sess.CurrentDepartment())

	sess = Session{Department: "CS"}
	assert.Equal(t, "CS", sess.CurrentDepartment())

	assert.Equal(t, "", Session{}.CurrentDepartment())
}

func TestDecodeClaims(t *testing.T) {
	token := makeToken(t, "student@test.edu", "user")

	claims, err := DecodeClaims(token)
	assert.NoError(t, err)
	assert.Equal(t, "student@test.edu", claims.Email)
	assert.Equal(t, "user", claims.Role)

	_, err = DecodeClaims("not-a-jwt")
	assert.Error(t, err)
}
