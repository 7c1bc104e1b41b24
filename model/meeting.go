package model

// MeetingType represents the kind of board gathering
type MeetingType string

const (
	// MeetingTypeBoard represents a full board meeting.
	MeetingTypeBoard MeetingType = "board"
	// MeetingTypeCommittee represents a committee working session.
	MeetingTypeCommittee MeetingType = "committee"
	// MeetingTypeSpecial represents a special session called outside the regular calendar.
	MeetingTypeSpecial MeetingType = "special"
	// MeetingTypeAnnual represents the annual general meeting.
	MeetingTypeAnnual MeetingType = "annual"
)

// MeetingStatus represents the scheduling state of a meeting
type MeetingStatus string

const (
	// MeetingStatusScheduled represents a meeting on the calendar.
	MeetingStatusScheduled MeetingStatus = "scheduled"
	// MeetingStatusCompleted represents a meeting that has taken place.
	MeetingStatusCompleted MeetingStatus = "completed"
	// MeetingStatusCancelled represents a meeting that was called off.
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// MeetingTypes lists every accepted meeting type value.
var MeetingTypes = []string{
	string(MeetingTypeBoard),
	string(MeetingTypeCommittee),
	string(MeetingTypeSpecial),
	string(MeetingTypeAnnual),
}

// MeetingStatuses lists every accepted meeting status value.
var MeetingStatuses = []string{
	string(MeetingStatusScheduled),
	string(MeetingStatusCompleted),
	string(MeetingStatusCancelled),
}

// Meeting represents one board meeting row in the record store.
type Meeting struct {
	ID           string        `json:"id,omitempty"`
	Title        string        `json:"title"`
	MeetingType  MeetingType   `json:"meetingType"`
	MeetingDate  string        `json:"meetingDate"` // YYYY-MM-DD
	StartTime    string        `json:"startTime"`
	EndTime      string        `json:"endTime,omitempty"`
	Location     string        `json:"location,omitempty"`
	IsVirtual    bool          `json:"isVirtual"`
	MeetingLink  string        `json:"meetingLink,omitempty"`
	Status       MeetingStatus `json:"status"`
	Agenda       string        `json:"agenda,omitempty"`
	Minutes      string        `json:"minutes,omitempty"`
	MaterialsURL []string      `json:"materialsUrl,omitempty"`
	Attendees    []string      `json:"attendees,omitempty"` // board member IDs
	CreatedBy    string        `json:"createdBy,omitempty"`
	Notes        string        `json:"notes,omitempty"`
}
