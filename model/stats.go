package model

// ActivityType tags an activity feed entry with its source entity
type ActivityType string

const (
	// ActivityGrant marks a feed entry derived from a grant application.
	ActivityGrant ActivityType = "grant"
	// ActivityMeeting marks a feed entry derived from an upcoming meeting.
	ActivityMeeting ActivityType = "meeting"
	// ActivityDocument marks a feed entry derived from a document upload.
	ActivityDocument ActivityType = "document"
	// ActivityPartner marks a feed entry derived from a new partnership.
	ActivityPartner ActivityType = "partner"
)

// Activity is one entry in the dashboard's merged recent-activity feed.
type Activity struct {
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Date        string       `json:"date"`
	Description string       `json:"description"`
}

// GrantsByProgram breaks grant counts down by program category.
type GrantsByProgram struct {
	MinistryLeadership int `json:"ministry_leadership"`
	FaithAndWork       int `json:"faith_and_work"`
	StrategicGrants    int `json:"strategic_grants"`
}

// DashboardStats is the aggregated snapshot served by /api/dashboard/stats.
type DashboardStats struct {
	TotalGrants          int             `json:"totalGrants"`
	PendingGrants        int             `json:"pendingGrants"`
	ApprovedGrants       int             `json:"approvedGrants"`
	TotalFundingApproved float64         `json:"totalFundingApproved"`
	ActivePartners       int             `json:"activePartners"`
	UpcomingMeetings     int             `json:"upcomingMeetings"`
	RecentDocuments      int             `json:"recentDocuments"`
	GrantsByProgram      GrantsByProgram `json:"grantsByProgram"`
	RecentActivity       []Activity      `json:"recentActivity"`
}
