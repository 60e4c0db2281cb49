package user

import "github.com/google/uuid"

// Principal is the authenticated actor handed in by the auth layer.
// The booking core never looks up credentials itself.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

func (p Principal) IsAdmin() bool    { return p.Role == RoleAdmin }
func (p Principal) IsVendor() bool   { return p.Role == RoleVendor }
func (p Principal) IsCustomer() bool { return p.Role == RoleCustomer }
