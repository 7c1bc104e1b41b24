// Package graphql assembles the root GraphQL schema from the module query fields.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/charis-foundation/board-backend/graphql/modules/dashboard"
	dashsvc "github.com/charis-foundation/board-backend/restapi/modules/dashboard"
)

// CreateSchema builds the root query schema over the dashboard service.
func CreateSchema(svc *dashsvc.Service) (graphql.Schema, error) {
	fields := graphql.Fields{}
	for name, field := range dashboard.GetQueryFields(svc) {
		fields[name] = field
	}

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	})
	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}
