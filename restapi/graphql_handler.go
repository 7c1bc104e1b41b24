// Package restapi provides the main router and the GraphQL transport for the API.
package restapi

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/charis-foundation/board-backend/restapi/modules/auth"
)

// GraphQLHandler returns a Fiber handler for GraphQL requests
func GraphQLHandler(schema graphql.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var params struct {
			Query         string                 `json:"query"`
			OperationName string                 `json:"operationName"`
			Variables     map[string]interface{} `json:"variables"`
		}

		if err := c.BodyParser(&params); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []map[string]interface{}{{"message": "Invalid request body"}},
			})
		}

		ctx := context.Background()
		if memberID := auth.MemberID(c); memberID != "" {
			ctx = context.WithValue(ctx, auth.MemberKey, memberID)
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  params.Query,
			VariableValues: params.Variables,
			OperationName:  params.OperationName,
			Context:        ctx,
		})

		return c.JSON(result)
	}
}
