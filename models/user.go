package models

// Role is the session role of a signed-in identity. Values are the persisted
// wire strings, which backup files depend on.
type Role string

const (
	RoleGuest  Role = "visitante"
	RoleLeader Role = "lider"
	RoleHelper Role = "auxiliar"
)

// User is a transient session identity. It is never persisted: a leader logs
// in with fixed credentials, a helper just states a name, and the identity
// lives only as long as the issued token.
type User struct {
	ID   string `json:"uid"`
	Name string `json:"nome"`
	Role Role   `json:"papel"`
}

// IsLeader reports whether u is a signed-in leader.
func (u *User) IsLeader() bool {
	return u != nil && u.Role == RoleLeader
}
