package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/charis-foundation/board-backend/config"
	"github.com/charis-foundation/board-backend/model"
	"github.com/charis-foundation/board-backend/recordstore"
	"github.com/charis-foundation/board-backend/util"
)

// tableRows serializes model values as a record-store list response.
func tableRows(t *testing.T, rows ...interface{}) string {
	t.Helper()
	records := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		raw, err := json.Marshal(row)
		require.NoError(t, err)
		var fields map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &fields))
		delete(fields, "id")
		records[i] = map[string]interface{}{
			"id":          fmt.Sprintf("rec%02d", i),
			"fields":      fields,
			"createdTime": "2026-08-01T00:00:00.000Z",
		}
	}
	out, err := json.Marshal(map[string]interface{}{"records": records})
	require.NoError(t, err)
	return string(out)
}

func newTestService(t *testing.T, responses map[string]string, failTable string) *Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")
		require.Len(t, parts, 2)
		table := parts[1]
		if table == failTable {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"type":"SERVER_ERROR"}}`))
			return
		}
		if resp, ok := responses[table]; ok {
			w.Write([]byte(resp))
			return
		}
		w.Write([]byte(`{"records":[]}`))
	}))
	t.Cleanup(srv.Close)

	store := recordstore.NewClient(recordstore.Config{
		BaseURL: srv.URL,
		BaseID:  "appTest",
		APIKey:  "key_test",
	}, zap.NewNop())
	return NewService(store, config.DefaultTables(), zap.NewNop())
}

func TestSnapshotCounts(t *testing.T) {
	responses := map[string]string{
		"tblGrants": tableRows(t,
			model.Grant{OrganizationName: "Grace House", Status: model.GrantStatusPending,
				ProgramCategory: model.ProgramMinistryLeadership, AmountRequested: 10000,
				ApplicationDate: "2026-08-10"},
			model.Grant{OrganizationName: "Hope Center", Status: model.GrantStatusApproved,
				ProgramCategory: model.ProgramFaithAndWork, AmountRequested: 20000,
				AmountApproved: 15000, ApplicationDate: "2026-08-12"},
			model.Grant{OrganizationName: "City Mission", Status: model.GrantStatusApproved,
				ProgramCategory: model.ProgramFaithAndWork, AmountRequested: 8000,
				AmountApproved: 8000, ApplicationDate: "2026-08-05"},
			model.Grant{OrganizationName: "Old Partner", Status: model.GrantStatusRejected,
				ProgramCategory: model.ProgramStrategicGrants, AmountRequested: 5000,
				AmountApproved: 5000, ApplicationDate: "2026-07-01"},
		),
		"tblPartners": tableRows(t,
			model.Partner{OrganizationName: "Hope Center", Status: model.PartnerStatusActive,
				PartnershipStartDate: "2024-01-15"},
			model.Partner{OrganizationName: "City Mission", Status: model.PartnerStatusActive,
				PartnershipStartDate: util.DaysAgo(3)},
		),
		"tblMeetings": tableRows(t,
			model.Meeting{Title: "Q3 Board Meeting", MeetingType: model.MeetingTypeBoard,
				MeetingDate: util.DaysAgo(-7), StartTime: "10:00",
				Status: model.MeetingStatusScheduled},
		),
		"tblDocuments": tableRows(t,
			model.Document{Title: "Audit Report", Category: model.DocumentCategoryFinancial,
				FileName: "audit.pdf", UploadDate: util.DaysAgo(2)},
		),
	}
	svc := newTestService(t, responses, "")

	stats, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalGrants)
	assert.Equal(t, 1, stats.PendingGrants)
	assert.Equal(t, 2, stats.ApprovedGrants)
	// Rejected grants never contribute funding, even with a stale amountApproved.
	assert.Equal(t, 23000.0, stats.TotalFundingApproved)
	assert.Equal(t, 2, stats.ActivePartners)
	assert.Equal(t, 1, stats.UpcomingMeetings)
	assert.Equal(t, 1, stats.RecentDocuments)

	assert.Equal(t, 1, stats.GrantsByProgram.MinistryLeadership)
	assert.Equal(t, 2, stats.GrantsByProgram.FaithAndWork)
	assert.Equal(t, 1, stats.GrantsByProgram.StrategicGrants)
}

func TestSnapshotActivityFeed(t *testing.T) {
	responses := map[string]string{
		"tblGrants": tableRows(t,
			model.Grant{OrganizationName: "Hope Center", Status: model.GrantStatusPending,
				ProgramCategory: model.ProgramFaithAndWork, AmountRequested: 25000,
				ApplicationDate: util.DaysAgo(1)},
			model.Grant{OrganizationName: "Grace House", Status: model.GrantStatusPending,
				ProgramCategory: model.ProgramMinistryLeadership, AmountRequested: 10000,
				ApplicationDate: util.DaysAgo(10)},
		),
		"tblPartners": tableRows(t,
			model.Partner{OrganizationName: "Hope Center", Status: model.PartnerStatusActive,
				PartnershipStartDate: util.DaysAgo(5)},
			model.Partner{OrganizationName: "Old Friends", Status: model.PartnerStatusActive,
				PartnershipStartDate: "2020-01-01"},
		),
		"tblMeetings": tableRows(t,
			model.Meeting{Title: "Q3 Board Meeting", MeetingType: model.MeetingTypeBoard,
				MeetingDate: util.DaysAgo(-7), StartTime: "10:00",
				Status: model.MeetingStatusScheduled},
		),
		"tblDocuments": tableRows(t,
			model.Document{Title: "Audit Report", Category: model.DocumentCategoryFinancial,
				FileName: "audit.pdf", UploadDate: util.DaysAgo(2)},
		),
	}
	svc := newTestService(t, responses, "")

	stats, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	feed := stats.RecentActivity
	require.Len(t, feed, 5)

	// Newest first: the meeting is dated next week, everything else is past.
	assert.Equal(t, model.ActivityMeeting, feed[0].Type)
	assert.Equal(t, "Q3 Board Meeting", feed[0].Title)
	assert.Equal(t, "board meeting at 10:00", feed[0].Description)

	assert.Equal(t, model.ActivityGrant, feed[1].Type)
	assert.Equal(t, "New Grant Application: Hope Center", feed[1].Title)
	assert.Equal(t, "faith and work - $25,000", feed[1].Description)

	assert.Equal(t, model.ActivityDocument, feed[2].Type)
	assert.Equal(t, "New Document: Audit Report", feed[2].Title)
	assert.Equal(t, "financial - audit.pdf", feed[2].Description)

	assert.Equal(t, model.ActivityPartner, feed[3].Type)
	assert.Equal(t, "New Partner: Hope Center", feed[3].Title)
	assert.Equal(t, "Partnership established", feed[3].Description)

	// The older grant follows; the 2020 partnership is outside the window
	// and never enters the feed.
	assert.Equal(t, model.ActivityGrant, feed[4].Type)
	assert.Equal(t, "New Grant Application: Grace House", feed[4].Title)
	for _, entry := range feed {
		assert.NotEqual(t, "New Partner: Old Friends", entry.Title)
	}
}

func TestSnapshotFeedTruncation(t *testing.T) {
	grants := make([]interface{}, 20)
	for i := range grants {
		grants[i] = model.Grant{OrganizationName: "Org", Status: model.GrantStatusPending,
			ProgramCategory: model.ProgramStrategicGrants, AmountRequested: 100,
			ApplicationDate: util.DaysAgo(i + 1)}
	}
	docs := make([]interface{}, 10)
	for i := range docs {
		docs[i] = model.Document{Title: "Doc", Category: model.DocumentCategoryReport,
			FileName: "doc.pdf", UploadDate: util.DaysAgo(i + 1)}
	}
	meetings := make([]interface{}, 6)
	for i := range meetings {
		meetings[i] = model.Meeting{Title: "Meeting", MeetingType: model.MeetingTypeCommittee,
			MeetingDate: util.DaysAgo(-(i + 1)), StartTime: "09:00",
			Status: model.MeetingStatusScheduled}
	}
	partners := make([]interface{}, 5)
	for i := range partners {
		partners[i] = model.Partner{OrganizationName: "Partner", Status: model.PartnerStatusActive,
			PartnershipStartDate: util.DaysAgo(i + 1)}
	}
	responses := map[string]string{
		"tblGrants":    tableRows(t, grants...),
		"tblPartners":  tableRows(t, partners...),
		"tblMeetings":  tableRows(t, meetings...),
		"tblDocuments": tableRows(t, docs...),
	}
	svc := newTestService(t, responses, "")

	stats, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	// 5 grants + 3 meetings + 5 documents + 3 partners feed the merge, capped at 15.
	assert.Len(t, stats.RecentActivity, 15)
}

func TestSnapshotFailsWhenAnySourceFails(t *testing.T) {
	svc := newTestService(t, map[string]string{}, "tblMeetings")

	_, err := svc.Snapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch meetings")
}

func TestDateOfUnparseableSortsLast(t *testing.T) {
	assert.True(t, dateOf("not-a-date").IsZero())
	assert.False(t, dateOf("2026-08-30").IsZero())
	assert.False(t, dateOf("2026-08-30T10:00:00Z").IsZero())
}
