// Package meetings implements the REST API handlers for board meetings.
package meetings

import (
	"go.uber.org/zap"

	"github.com/charis-foundation/board-backend/model"
	"github.com/charis-foundation/board-backend/recordstore"
	"github.com/charis-foundation/board-backend/restapi/modules/resource"
)

// Spec declares the meeting CRUD behavior. New meetings default to a scheduled
// in-person board meeting created by the session member; lists filter on
// status, type, and an upcoming flag that compares the meeting date against
// today.
func Spec() resource.Spec {
	return resource.Spec{
		Label:    "meeting",
		Plural:   "meetings",
		BodyKey:  "meeting",
		Required: []string{"title", "meetingDate", "startTime"},
		Enums: map[string][]string{
			"status":      model.MeetingStatuses,
			"meetingType": model.MeetingTypes,
		},
		Defaults: func(memberID string, fields map[string]interface{}) {
			if resource.Blank(fields["status"]) {
				fields["status"] = string(model.MeetingStatusScheduled)
			}
			if resource.Blank(fields["meetingType"]) {
				fields["meetingType"] = string(model.MeetingTypeBoard)
			}
			if _, ok := fields["isVirtual"]; !ok {
				fields["isVirtual"] = false
			}
			if resource.Blank(fields["createdBy"]) {
				fields["createdBy"] = memberID
			}
		},
		Filters: []resource.Filter{
			{Param: "status", Field: "status", Allowed: model.MeetingStatuses},
			{Param: "meetingType", Field: "meetingType", Allowed: model.MeetingTypes},
		},
		UpcomingOn: "meetingDate",
		SortField:  "meetingDate",
		SortDesc:   true,
	}
}

// NewHandler binds the meeting handlers to their record-store table.
func NewHandler(store *recordstore.Client, table string, logger *zap.Logger) *resource.Handler {
	return resource.New(store, table, Spec(), logger)
}
