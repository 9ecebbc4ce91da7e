package session

import (
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	_, tokenString, err := ja.Encode(claims)
	require.NoError(t, err)
	return tokenString
}

func TestDecode_ValidCredential(t *testing.T) {
	cred := encodeToken(t, map[string]interface{}{
		"employeeId": "VY001",
		"role":       "ADMIN",
		"iat":        1700000000,
	})

	claims := Decode(cred)
	require.NotNil(t, claims)
	assert.Equal(t, "VY001", claims.EmployeeID)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.True(t, claims.Role.IsAdmin())
}

func TestDecode_EmployeeRole(t *testing.T) {
	cred := encodeToken(t, map[string]interface{}{
		"employeeId": "VY014",
		"role":       "EMPLOYEE",
	})

	claims := Decode(cred)
	require.NotNil(t, claims)
	assert.Equal(t, RoleEmployee, claims.Role)
	assert.False(t, claims.Role.IsAdmin())
}

// An unrecognized or missing role claim still decodes; it just carries no
// role, so admin gating fails downstream without treating the session as
// broken.
func TestDecode_UnknownRoleTreatedAsNoRole(t *testing.T) {
	for _, claims := range []map[string]interface{}{
		{"employeeId": "VY002", "role": "SUPERUSER"},
		{"employeeId": "VY002", "role": 42},
		{"employeeId": "VY002"},
	} {
		decoded := Decode(encodeToken(t, claims))
		require.NotNil(t, decoded)
		assert.Equal(t, "VY002", decoded.EmployeeID)
		assert.False(t, decoded.Role.Valid())
		assert.False(t, decoded.Role.IsAdmin())
	}
}

// Decode is a total function: any string, however malformed, yields nil
// rather than a panic or error.
func TestDecode_MalformedCredentials(t *testing.T) {
	inputs := []string{
		"",
		"not-a-token",
		"one.two",
		"a.b.c.d",
		"only-one-segment",
		"!!!.@@@.###",
		"eyJhbGciOiJIUzI1NiJ9.%%%not-base64%%%.sig",
		"eyJhbGciOiJIUzI1NiJ9.bm90LWpzb24.sig", // payload decodes to "not-json"
		"..",
		"...",
	}
	for _, in := range inputs {
		assert.Nil(t, Decode(in), "Decode(%q) should be nil", in)
	}
}

func TestAuthorize_Completeness(t *testing.T) {
	// Everything Decode rejects must come out Unauthenticated.
	for _, in := range []string{"", "garbage", "x.y.z"} {
		s := Authorize(in)
		assert.Equal(t, Unauthenticated, s.Status)
		assert.Nil(t, s.Claims)
		assert.False(t, s.Authenticated())
		assert.False(t, s.IsAdmin())
	}

	// Everything Decode accepts must come out Authorized with those claims.
	cred := encodeToken(t, map[string]interface{}{
		"employeeId": "VY005",
		"role":       "EMPLOYEE",
	})
	s := Authorize(cred)
	require.Equal(t, Authorized, s.Status)
	require.NotNil(t, s.Claims)
	assert.Equal(t, "VY005", s.Claims.EmployeeID)
	assert.True(t, s.Authenticated())
	assert.False(t, s.IsAdmin())
}

func TestAuthorize_AdminGating(t *testing.T) {
	cred := encodeToken(t, map[string]interface{}{
		"employeeId": "VY001",
		"role":       "ADMIN",
	})
	s := Authorize(cred)
	assert.True(t, s.IsAdmin())
}
