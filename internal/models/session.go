// Package models defines client-side data models used by the Thesis Ledger CLI.
package models

// Role values as reported by the backend. The client only uses them to
// decide which actions to offer in the UI; authorization is enforced by
// the server on every call.
const (
	RoleAdmin       = "ADMIN"
	RoleAdminSpring = "ROLE_ADMIN"
)

// Session is the authenticated identity of the current user.
type Session struct {
	// Token is the bearer token attached to every authenticated request.
	Token string `json:"token"`

	// Email identifies the user; the review flow compares it against
	// thesis uploader and approver identities.
	Email string `json:"email"`

	// Name is the display name shown in the prompt.
	Name string `json:"name"`

	// Role is the server-reported role flag.
	Role string `json:"role"`
}

// IsAdmin reports whether the session carries an admin role flag. This is
// a convenience for hiding admin views only, never a security boundary.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin || s.Role == RoleAdminSpring
}
