package domain

// Role is the permission class carried in the access token's role claim.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleSupplier     Role = "supplier"
	RoleConsumer     Role = "consumer"
	RoleLogistics    Role = "logistics"
	RoleManufacturer Role = "manufacturer"
)

// SignupRoles lists the roles an account can be created with, in display order.
var SignupRoles = []Role{RoleSupplier, RoleManufacturer, RoleLogistics, RoleConsumer, RoleAdmin}

// Valid reports whether r is a role the backend issues.
func (r Role) Valid() bool {
	for _, known := range SignupRoles {
		if r == known {
			return true
		}
	}
	return false
}

// User is an account as returned by the backend after signup.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
