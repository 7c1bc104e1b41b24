// Package members implements the REST API handlers for board members.
package members

import (
	"go.uber.org/zap"

	"github.com/charis-foundation/board-backend/model"
	"github.com/charis-foundation/board-backend/recordstore"
	"github.com/charis-foundation/board-backend/restapi/modules/resource"
	"github.com/charis-foundation/board-backend/util"
)

// Spec declares the board-member CRUD behavior. New members join as active
// regular members dated today unless the caller supplies otherwise; lists
// filter on role and the active flag, ordered by last name.
func Spec() resource.Spec {
	return resource.Spec{
		Label:    "member",
		Plural:   "members",
		BodyKey:  "member",
		Required: []string{"firstName", "lastName", "email"},
		Enums: map[string][]string{
			"role": model.BoardRoles,
		},
		Defaults: func(_ string, fields map[string]interface{}) {
			if resource.Blank(fields["role"]) {
				fields["role"] = string(model.RoleMember)
			}
			if _, ok := fields["isActive"]; !ok {
				fields["isActive"] = true
			}
			if resource.Blank(fields["joinDate"]) {
				fields["joinDate"] = util.Today()
			}
		},
		Filters: []resource.Filter{
			{Param: "role", Field: "role", Allowed: model.BoardRoles},
			{Param: "active", Field: "isActive", Allowed: []string{"true", "false"}, Bool: true},
		},
		SortField: "lastName",
		SortDesc:  false,
	}
}

// NewHandler binds the board-member handlers to their record-store table.
func NewHandler(store *recordstore.Client, table string, logger *zap.Logger) *resource.Handler {
	return resource.New(store, table, Spec(), logger)
}
