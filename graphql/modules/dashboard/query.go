// Package dashboard defines the GraphQL queries for the board dashboard.
package dashboard

import (
	"github.com/graphql-go/graphql"

	dashsvc "github.com/charis-foundation/board-backend/restapi/modules/dashboard"
)

// GetQueryFields returns the dashboard queries to be mounted in the root schema
func GetQueryFields(svc *dashsvc.Service) graphql.Fields {
	return graphql.Fields{
		"dashboardStats": &graphql.Field{
			Type: DashboardStatsType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveStats(p, svc)
			},
		},
	}
}
