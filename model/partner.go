package model

// PartnerStatus represents the state of a partner relationship
type PartnerStatus string

const (
	// PartnerStatusActive represents a partner with ongoing funded work.
	PartnerStatusActive PartnerStatus = "active"
	// PartnerStatusInactive represents a partner with no current engagement.
	PartnerStatusInactive PartnerStatus = "inactive"
	// PartnerStatusPending represents a partner still being onboarded.
	PartnerStatusPending PartnerStatus = "pending"
	// PartnerStatusAlumni represents a former partner whose programs have ended.
	PartnerStatusAlumni PartnerStatus = "alumni"
)

// PartnerStatuses lists every accepted partner status value.
var PartnerStatuses = []string{
	string(PartnerStatusActive),
	string(PartnerStatusInactive),
	string(PartnerStatusPending),
	string(PartnerStatusAlumni),
}

// Partner represents one partner organization row in the record store.
type Partner struct {
	ID                   string        `json:"id,omitempty"`
	OrganizationName     string        `json:"organizationName"`
	ContactName          string        `json:"contactName"`
	ContactEmail         string        `json:"contactEmail"`
	ContactPhone         string        `json:"contactPhone,omitempty"`
	Website              string        `json:"website,omitempty"`
	Address              string        `json:"address,omitempty"`
	City                 string        `json:"city,omitempty"`
	State                string        `json:"state,omitempty"`
	ZipCode              string        `json:"zipCode,omitempty"`
	Status               PartnerStatus `json:"status"`
	TotalFundingReceived float64       `json:"totalFundingReceived"`
	ActiveGrants         int           `json:"activeGrants"`
	PartnershipStartDate string        `json:"partnershipStartDate"` // YYYY-MM-DD
	Description          string        `json:"description,omitempty"`
	Notes                string        `json:"notes,omitempty"`
}
