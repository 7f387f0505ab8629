// Package entity contains the core business objects of the project.
package entity

// Role represents the access tier of a user.
type Role string

const (
	// RoleClient is a shopper.
	RoleClient Role = "client"
	// RoleAdmin manages the bakery: catalog, orders, discounts and ads.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin owns the platform and sees platform statistics and users.
	RoleSuperAdmin Role = "super_admin"
)

var roleRank = map[Role]int{
	RoleClient:     1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	_, ok := roleRank[r]

	return ok
}

// Satisfies reports whether r grants at least the access of required.
func (r Role) Satisfies(required Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}

	return have >= roleRank[required]
}

// IsStaff reports whether the role may use the admin surface.
func (r Role) IsStaff() bool {
	return r.Satisfies(RoleAdmin)
}
