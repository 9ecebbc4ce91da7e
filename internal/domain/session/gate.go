package session

type Status int

const (
	Unauthenticated Status = iota
	Authorized
)

// Session is the result of running the gate over the stored credential.
// Claims is non-nil exactly when Status is Authorized.
type Session struct {
	Status Status
	Claims *Claims
}

func (s Session) Authenticated() bool {
	return s.Status == Authorized && s.Claims != nil
}

// IsAdmin is the downstream role check for admin-only views. A user who
// fails it is still logged in and must land on a neutral authenticated
// view, never back on the login screen.
func (s Session) IsAdmin() bool {
	return s.Authenticated() && s.Claims.Role.IsAdmin()
}

// Authorize gates the protected UI on the credential. Absence of a
// credential, or one that fails to decode, yields Unauthenticated and the
// caller must render the login view and nothing of the protected tree.
// A credential that decodes is Authorized regardless of claim content;
// role checks happen per-view via IsAdmin.
func Authorize(credential string) Session {
	claims := Decode(credential)
	if claims == nil {
		return Session{Status: Unauthenticated}
	}
	return Session{Status: Authorized, Claims: claims}
}
