// Package model defines the data structures used by the board-backend,
// including grants, partners, meetings, documents, and board members.
package model

// GrantStatus represents the review lifecycle of a grant application
type GrantStatus string

const (
	// GrantStatusPending represents a newly submitted application awaiting triage.
	GrantStatusPending GrantStatus = "pending"
	// GrantStatusUnderReview represents an application currently with the review committee.
	GrantStatusUnderReview GrantStatus = "under_review"
	// GrantStatusApproved represents an application the board has approved for funding.
	GrantStatusApproved GrantStatus = "approved"
	// GrantStatusRejected represents an application the board has declined.
	GrantStatusRejected GrantStatus = "rejected"
	// GrantStatusCompleted represents a funded grant whose program has concluded.
	GrantStatusCompleted GrantStatus = "completed"
)

// ProgramCategory represents the foundation program a grant belongs to
type ProgramCategory string

const (
	// ProgramMinistryLeadership represents the ministry leadership development program.
	ProgramMinistryLeadership ProgramCategory = "ministry_leadership"
	// ProgramFaithAndWork represents the faith and work integration program.
	ProgramFaithAndWork ProgramCategory = "faith_and_work"
	// ProgramStrategicGrants represents the strategic grants program.
	ProgramStrategicGrants ProgramCategory = "strategic_grants"
)

// GrantStatuses lists every accepted grant status value.
var GrantStatuses = []string{
	string(GrantStatusPending),
	string(GrantStatusUnderReview),
	string(GrantStatusApproved),
	string(GrantStatusRejected),
	string(GrantStatusCompleted),
}

// ProgramCategories lists every accepted program category value.
var ProgramCategories = []string{
	string(ProgramMinistryLeadership),
	string(ProgramFaithAndWork),
	string(ProgramStrategicGrants),
}

// Grant represents one grant application row in the record store.
// The ID is assigned by the store on creation and never changes.
type Grant struct {
	ID               string          `json:"id,omitempty"`
	OrganizationName string          `json:"organizationName"`
	ProgramCategory  ProgramCategory `json:"programCategory"`
	AmountRequested  float64         `json:"amountRequested"`
	AmountApproved   float64         `json:"amountApproved,omitempty"` // meaningful only when status is approved
	Status           GrantStatus     `json:"status"`
	ApplicationDate  string          `json:"applicationDate"` // YYYY-MM-DD
	Description      string          `json:"description,omitempty"`
	ContactName      string          `json:"contactName,omitempty"`
	ContactEmail     string          `json:"contactEmail,omitempty"`
	ContactPhone     string          `json:"contactPhone,omitempty"`
	ReviewNotes      string          `json:"reviewNotes,omitempty"`
	ReviewedBy       string          `json:"reviewedBy,omitempty"`
	ReviewDate       string          `json:"reviewDate,omitempty"`
	PartnerID        string          `json:"partnerId,omitempty"` // link to the Partners table
}
