package models

// Identity is the authenticated subject derived at login and reasserted per
// request from the verified session token. SubjectID is table-scoped: it is an
// admin_id when Role is admin and a resident_id when Role is resident.
type Identity struct {
	SubjectID int64  `json:"subjectId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
