// Package dashboard computes the aggregated snapshot behind the dashboard:
// grant/partner/meeting/document counts plus the merged recent-activity feed.
// The snapshot is a pure read-time fold over the other modules' tables,
// recomputed on every call.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/charis-foundation/board-backend/config"
	"github.com/charis-foundation/board-backend/model"
	"github.com/charis-foundation/board-backend/recordstore"
	"github.com/charis-foundation/board-backend/util"
)

const (
	grantFetchLimit    = 500
	partnerFetchLimit  = 500
	meetingFetchLimit  = 100
	documentFetchLimit = 100

	recentWindowDays = 30

	recentGrantEntries    = 5
	upcomingMeetingEntries = 3
	recentDocumentEntries = 5
	recentPartnerEntries  = 3
	feedLimit             = 15
)

// Service computes dashboard snapshots against the record store.
type Service struct {
	store  *recordstore.Client
	tables config.Tables
	logger *zap.Logger
}

// NewService builds a Service over the given store and table map.
func NewService(store *recordstore.Client, tables config.Tables, logger *zap.Logger) *Service {
	return &Service{store: store, tables: tables, logger: logger}
}

// Snapshot fetches the four source tables concurrently and folds them into a
// DashboardStats. The four queries have no ordering dependency, but nothing
// can be combined until all complete; if any one fails the whole snapshot
// fails — there is no partial-degradation path.
func (s *Service) Snapshot(ctx context.Context) (model.DashboardStats, error) {
	var (
		grants    []model.Grant
		partners  []model.Partner
		meetings  []model.Meeting
		documents []model.Document
	)
	today := util.Today()
	windowStart := util.DaysAgo(recentWindowDays)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := s.store.List(ctx, s.tables.Grants, recordstore.ListOptions{
			MaxRecords: grantFetchLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch grants: %w", err)
		}
		grants, err = decodeAll[model.Grant](recs)
		return err
	})
	g.Go(func() error {
		recs, err := s.store.List(ctx, s.tables.Partners, recordstore.ListOptions{
			MaxRecords: partnerFetchLimit,
			Filter:     recordstore.Eq("status", string(model.PartnerStatusActive)),
		})
		if err != nil {
			return fmt.Errorf("failed to fetch partners: %w", err)
		}
		partners, err = decodeAll[model.Partner](recs)
		return err
	})
	g.Go(func() error {
		recs, err := s.store.List(ctx, s.tables.Meetings, recordstore.ListOptions{
			MaxRecords: meetingFetchLimit,
			Filter: recordstore.And(
				recordstore.Eq("status", string(model.MeetingStatusScheduled)),
				recordstore.IsAfter("meetingDate", today),
			),
		})
		if err != nil {
			return fmt.Errorf("failed to fetch meetings: %w", err)
		}
		meetings, err = decodeAll[model.Meeting](recs)
		return err
	})
	g.Go(func() error {
		recs, err := s.store.List(ctx, s.tables.Documents, recordstore.ListOptions{
			MaxRecords: documentFetchLimit,
			Filter:     recordstore.IsAfter("uploadDate", windowStart),
		})
		if err != nil {
			return fmt.Errorf("failed to fetch documents: %w", err)
		}
		documents, err = decodeAll[model.Document](recs)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.DashboardStats{}, err
	}

	stats := model.DashboardStats{
		TotalGrants:      len(grants),
		ActivePartners:   len(partners),
		UpcomingMeetings: len(meetings),
		RecentDocuments:  len(documents),
	}
	for _, grant := range grants {
		switch grant.Status {
		case model.GrantStatusPending:
			stats.PendingGrants++
		case model.GrantStatusApproved:
			stats.ApprovedGrants++
			stats.TotalFundingApproved += grant.AmountApproved
		}
		switch grant.ProgramCategory {
		case model.ProgramMinistryLeadership:
			stats.GrantsByProgram.MinistryLeadership++
		case model.ProgramFaithAndWork:
			stats.GrantsByProgram.FaithAndWork++
		case model.ProgramStrategicGrants:
			stats.GrantsByProgram.StrategicGrants++
		}
	}

	stats.RecentActivity = buildActivityFeed(grants, partners, meetings, documents, windowStart)
	return stats, nil
}

// buildActivityFeed takes a fixed top-K slice from each source, tags the
// entries, then merges and re-sorts them by date descending, newest first,
// truncated to the feed limit.
func buildActivityFeed(grants []model.Grant, partners []model.Partner,
	meetings []model.Meeting, documents []model.Document, windowStart string) []model.Activity {

	feed := make([]model.Activity, 0, feedLimit)

	recentGrants := append([]model.Grant(nil), grants...)
	sort.SliceStable(recentGrants, func(i, j int) bool {
		return dateOf(recentGrants[i].ApplicationDate).After(dateOf(recentGrants[j].ApplicationDate))
	})
	for _, grant := range topN(recentGrants, recentGrantEntries) {
		feed = append(feed, model.Activity{
			Type:  model.ActivityGrant,
			Title: "New Grant Application: " + grant.OrganizationName,
			Date:  grant.ApplicationDate,
			Description: fmt.Sprintf("%s - $%s",
				strings.ReplaceAll(string(grant.ProgramCategory), "_", " "),
				humanize.Commaf(grant.AmountRequested)),
		})
	}

	nextMeetings := append([]model.Meeting(nil), meetings...)
	sort.SliceStable(nextMeetings, func(i, j int) bool {
		return dateOf(nextMeetings[i].MeetingDate).Before(dateOf(nextMeetings[j].MeetingDate))
	})
	for _, meeting := range topN(nextMeetings, upcomingMeetingEntries) {
		feed = append(feed, model.Activity{
			Type:        model.ActivityMeeting,
			Title:       meeting.Title,
			Date:        meeting.MeetingDate,
			Description: fmt.Sprintf("%s meeting at %s", meeting.MeetingType, meeting.StartTime),
		})
	}

	recentDocs := append([]model.Document(nil), documents...)
	sort.SliceStable(recentDocs, func(i, j int) bool {
		return dateOf(recentDocs[i].UploadDate).After(dateOf(recentDocs[j].UploadDate))
	})
	for _, doc := range topN(recentDocs, recentDocumentEntries) {
		feed = append(feed, model.Activity{
			Type:        model.ActivityDocument,
			Title:       "New Document: " + doc.Title,
			Date:        doc.UploadDate,
			Description: fmt.Sprintf("%s - %s", doc.Category, doc.FileName),
		})
	}

	cutoff := dateOf(windowStart)
	added := 0
	for _, partner := range partners {
		if added == recentPartnerEntries {
			break
		}
		if dateOf(partner.PartnershipStartDate).Before(cutoff) {
			continue
		}
		feed = append(feed, model.Activity{
			Type:        model.ActivityPartner,
			Title:       "New Partner: " + partner.OrganizationName,
			Date:        partner.PartnershipStartDate,
			Description: "Partnership established",
		})
		added++
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return dateOf(feed[i].Date).After(dateOf(feed[j].Date))
	})
	return topN(feed, feedLimit)
}

func decodeAll[T any](recs []recordstore.Record) ([]T, error) {
	out := make([]T, len(recs))
	for i, rec := range recs {
		decoded, err := recordstore.DecodeFields[T](rec)
		if err != nil {
			return nil, err
		}
		out[i] = decoded
	}
	return out, nil
}

func topN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// dateOf parses a stored date, treating unparseable values as the zero time
// so they sort to the end of a newest-first feed.
func dateOf(s string) time.Time {
	t, err := util.ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return t
}
