// Package dashboard implements the resolvers for the board dashboard queries.
package dashboard

import (
	"github.com/graphql-go/graphql"

	dashsvc "github.com/charis-foundation/board-backend/restapi/modules/dashboard"
)

// ResolveStats computes the aggregated dashboard snapshot. It reuses the same
// service as the REST route, so both surfaces always agree.
func ResolveStats(p graphql.ResolveParams, svc *dashsvc.Service) (interface{}, error) {
	return svc.Snapshot(p.Context)
}
