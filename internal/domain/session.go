package domain

// Session is the authenticated identity triple held from login until
// logout. It is owned by the session store; everything else reads it.
type Session struct {
	Token  string
	UserID string
	Email  string
}

// Valid reports whether the triple is usable. A session missing its
// token or user id is partial and must be treated as no session.
func (s Session) Valid() bool {
	return s.Token != "" && s.UserID != ""
}

type AuthMode string

const (
	AuthModeLogin  AuthMode = "login"
	AuthModeSignup AuthMode = "signup"
)

func (m AuthMode) Valid() bool {
	return m == AuthModeLogin || m == AuthModeSignup
}
