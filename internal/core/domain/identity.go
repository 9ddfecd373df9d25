package domain

// Identity is the authenticated actor attached to a request. It is resolved
// once by the session middleware and passed explicitly; handlers switch on
// Role rather than probing for attributes.
type Identity struct {
	UserID int64
	Role   string // RoleSeeker or RoleCompany
	Email  string
	Name   string
}

func (i Identity) IsSeeker() bool  { return i.Role == RoleSeeker }
func (i Identity) IsCompany() bool { return i.Role == RoleCompany }
