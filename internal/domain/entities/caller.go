package entities

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Caller is the authenticated identity supplied by the auth collaborator.
type Caller struct {
	ID   string
	Role string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

func (c Caller) Authenticated() bool {
	return c.ID != ""
}
