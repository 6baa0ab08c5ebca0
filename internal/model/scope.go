package model

// Scope identifies the authenticated caller of a request.
type Scope struct {
	Username string
}

// Authenticated reports whether the scope carries a caller identity.
func (s Scope) Authenticated() bool {
	return s.Username != ""
}
