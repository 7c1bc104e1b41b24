package model

// BoardRole represents a member's officer role on the board
type BoardRole string

const (
	// RoleChair represents the board chair.
	RoleChair BoardRole = "chair"
	// RoleViceChair represents the vice chair.
	RoleViceChair BoardRole = "vice_chair"
	// RoleTreasurer represents the treasurer.
	RoleTreasurer BoardRole = "treasurer"
	// RoleSecretary represents the secretary.
	RoleSecretary BoardRole = "secretary"
	// RoleMember represents a regular voting member.
	RoleMember BoardRole = "member"
)

// BoardRoles lists every accepted board role value.
var BoardRoles = []string{
	string(RoleChair),
	string(RoleViceChair),
	string(RoleTreasurer),
	string(RoleSecretary),
	string(RoleMember),
}

// BoardMember represents one board member row in the record store.
// AuthUserID links the row to the external authentication provider's user.
type BoardMember struct {
	ID                   string    `json:"id,omitempty"`
	AuthUserID           string    `json:"authUserId"`
	FirstName            string    `json:"firstName"`
	LastName             string    `json:"lastName"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone,omitempty"`
	Role                 BoardRole `json:"role"`
	JoinDate             string    `json:"joinDate"` // YYYY-MM-DD
	TermEndDate          string    `json:"termEndDate,omitempty"`
	IsActive             bool      `json:"isActive"`
	Bio                  string    `json:"bio,omitempty"`
	PhotoURL             string    `json:"photoUrl,omitempty"`
	CommitteeAssignments []string  `json:"committeeAssignments,omitempty"`
}
