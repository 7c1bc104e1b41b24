package model

// DocumentCategory represents the filing category of a board document
type DocumentCategory string

const (
	// DocumentCategoryGovernance represents bylaws, charters, and governance papers.
	DocumentCategoryGovernance DocumentCategory = "governance"
	// DocumentCategoryFinancial represents budgets, audits, and financial statements.
	DocumentCategoryFinancial DocumentCategory = "financial"
	// DocumentCategoryStrategicPlan represents strategic planning documents.
	DocumentCategoryStrategicPlan DocumentCategory = "strategic_plan"
	// DocumentCategoryMinutes represents approved meeting minutes.
	DocumentCategoryMinutes DocumentCategory = "minutes"
	// DocumentCategoryPolicy represents board policies.
	DocumentCategoryPolicy DocumentCategory = "policy"
	// DocumentCategoryReport represents program and committee reports.
	DocumentCategoryReport DocumentCategory = "report"
	// DocumentCategoryOther represents anything that does not fit the above.
	DocumentCategoryOther DocumentCategory = "other"
)

// AccessLevel represents who may view a document
type AccessLevel string

const (
	// AccessPublic represents documents visible to anyone.
	AccessPublic AccessLevel = "public"
	// AccessBoard represents documents visible to all board members.
	AccessBoard AccessLevel = "board"
	// AccessCommittee represents documents restricted to a committee.
	AccessCommittee AccessLevel = "committee"
	// AccessRestricted represents documents limited to named individuals.
	AccessRestricted AccessLevel = "restricted"
)

// DocumentCategories lists every accepted document category value.
var DocumentCategories = []string{
	string(DocumentCategoryGovernance),
	string(DocumentCategoryFinancial),
	string(DocumentCategoryStrategicPlan),
	string(DocumentCategoryMinutes),
	string(DocumentCategoryPolicy),
	string(DocumentCategoryReport),
	string(DocumentCategoryOther),
}

// AccessLevels lists every accepted access level value.
var AccessLevels = []string{
	string(AccessPublic),
	string(AccessBoard),
	string(AccessCommittee),
	string(AccessRestricted),
}

// Document represents one stored document row in the record store.
type Document struct {
	ID               string           `json:"id,omitempty"`
	Title            string           `json:"title"`
	Category         DocumentCategory `json:"category"`
	Description      string           `json:"description,omitempty"`
	FileURL          string           `json:"fileUrl"`
	FileName         string           `json:"fileName"`
	FileSize         int64            `json:"fileSize,omitempty"`
	UploadDate       string           `json:"uploadDate"` // YYYY-MM-DD
	UploadedBy       string           `json:"uploadedBy,omitempty"`
	LastModified     string           `json:"lastModified,omitempty"` // RFC3339, stamped on every update
	Tags             []string         `json:"tags,omitempty"`
	AccessLevel      AccessLevel      `json:"accessLevel,omitempty"`
	RelatedMeetingID string           `json:"relatedMeetingId,omitempty"`
}
