package user

// User is a catalog operator able to sign in to the write API.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	RoleCode     RoleCode
}
