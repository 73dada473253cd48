package identity

// Actor is the caller's identity and role, passed explicitly into the
// use cases that gate on it instead of living in ambient session state.
type Actor struct {
	UserID uint
	Role   string
}

const (
	RoleCustomer = "customer"
	RoleBarber   = "barber"
	RoleAdmin    = "admin"
)

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsStaff covers the workflows shop staff own: appointment status
// transitions.
func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleBarber
}
