// Package dashboard defines the GraphQL types for the board dashboard.
package dashboard

import (
	"github.com/graphql-go/graphql"
)

// ActivityType represents one entry in the recent-activity feed
var ActivityType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Activity",
	Fields: graphql.Fields{
		"type":        &graphql.Field{Type: graphql.String},
		"title":       &graphql.Field{Type: graphql.String},
		"date":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
	},
})

// GrantsByProgramType represents grant counts grouped by program category
var GrantsByProgramType = graphql.NewObject(graphql.ObjectConfig{
	Name: "GrantsByProgram",
	Fields: graphql.Fields{
		"ministry_leadership": &graphql.Field{Type: graphql.Int},
		"faith_and_work":      &graphql.Field{Type: graphql.Int},
		"strategic_grants":    &graphql.Field{Type: graphql.Int},
	},
})

// DashboardStatsType represents the aggregated dashboard snapshot
var DashboardStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DashboardStats",
	Fields: graphql.Fields{
		"totalGrants":          &graphql.Field{Type: graphql.Int},
		"pendingGrants":        &graphql.Field{Type: graphql.Int},
		"approvedGrants":       &graphql.Field{Type: graphql.Int},
		"totalFundingApproved": &graphql.Field{Type: graphql.Float},
		"activePartners":       &graphql.Field{Type: graphql.Int},
		"upcomingMeetings":     &graphql.Field{Type: graphql.Int},
		"recentDocuments":      &graphql.Field{Type: graphql.Int},
		"grantsByProgram":      &graphql.Field{Type: GrantsByProgramType},
		"recentActivity":       &graphql.Field{Type: graphql.NewList(ActivityType)},
	},
})
