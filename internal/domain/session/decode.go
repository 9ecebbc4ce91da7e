package session

import (
	"log/slog"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Decode parses the bearer credential and extracts the portal claims.
// The signature is deliberately NOT verified: the server issued the
// credential and re-authorizes every privileged call, so the decoded
// claims only drive UX decisions (which views to offer), never security
// ones. Any malformed input yields nil, which callers must treat exactly
// like "no credential".
func Decode(credential string) *Claims {
	if credential == "" {
		return nil
	}

	tok, err := jwt.ParseInsecure([]byte(credential))
	if err != nil {
		slog.Debug("credential decode failed", "error", err)
		return nil
	}

	claims := &Claims{}
	if v, ok := tok.Get("employeeId"); ok {
		if s, ok := v.(string); ok {
			claims.EmployeeID = s
		}
	}
	if v, ok := tok.Get("role"); ok {
		if s, ok := v.(string); ok && Role(s).Valid() {
			claims.Role = Role(s)
		}
	}
	return claims
}
