// Package grants implements the REST API handlers for grant applications.
package grants

import (
	"go.uber.org/zap"

	"github.com/charis-foundation/board-backend/model"
	"github.com/charis-foundation/board-backend/recordstore"
	"github.com/charis-foundation/board-backend/restapi/modules/resource"
	"github.com/charis-foundation/board-backend/util"
)

// Spec declares the grant CRUD behavior: an application requires the
// organization, program, and requested amount; new applications default to
// pending status dated today; lists filter on status and program and come
// back newest application first.
func Spec() resource.Spec {
	return resource.Spec{
		Label:    "grant",
		Plural:   "grants",
		BodyKey:  "grant",
		Required: []string{"organizationName", "programCategory", "amountRequested"},
		Enums: map[string][]string{
			"status":          model.GrantStatuses,
			"programCategory": model.ProgramCategories,
		},
		Defaults: func(_ string, fields map[string]interface{}) {
			if resource.Blank(fields["status"]) {
				fields["status"] = string(model.GrantStatusPending)
			}
			if resource.Blank(fields["applicationDate"]) {
				fields["applicationDate"] = util.Today()
			}
		},
		Filters: []resource.Filter{
			{Param: "status", Field: "status", Allowed: model.GrantStatuses},
			{Param: "programCategory", Field: "programCategory", Allowed: model.ProgramCategories},
		},
		SortField: "applicationDate",
		SortDesc:  true,
	}
}

// NewHandler binds the grant handlers to their record-store table.
func NewHandler(store *recordstore.Client, table string, logger *zap.Logger) *resource.Handler {
	return resource.New(store, table, Spec(), logger)
}
