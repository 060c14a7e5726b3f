package model

// Role is the caller's role as carried by the bearer token.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
	RoleMitra      Role = "mitra"
	RoleUser       Role = "user"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// Account is the public view of a logged-in principal.
type Account struct {
	ID       int64  `json:"id"`
	Nama     string `json:"nama"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Role     Role   `json:"role"`
	WisataID int64  `json:"wisata_id,omitempty"`
}

// Credentials is an account row including its password hash.
type Credentials struct {
	Account
	PasswordHash string
}
