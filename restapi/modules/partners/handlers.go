// Package partners implements the REST API handlers for partner organizations.
package partners

import (
	"go.uber.org/zap"

	"github.com/charis-foundation/board-backend/model"
	"github.com/charis-foundation/board-backend/recordstore"
	"github.com/charis-foundation/board-backend/restapi/modules/resource"
	"github.com/charis-foundation/board-backend/util"
)

// Spec declares the partner CRUD behavior. New partners start pending with
// zeroed funding totals and a partnership start date of today unless the
// caller supplies them; lists filter on status and sort by organization name.
func Spec() resource.Spec {
	return resource.Spec{
		Label:    "partner",
		Plural:   "partners",
		BodyKey:  "partner",
		Required: []string{"organizationName", "contactName", "contactEmail"},
		Enums: map[string][]string{
			"status": model.PartnerStatuses,
		},
		Defaults: func(_ string, fields map[string]interface{}) {
			if resource.Blank(fields["status"]) {
				fields["status"] = string(model.PartnerStatusPending)
			}
			if resource.Blank(fields["totalFundingReceived"]) {
				fields["totalFundingReceived"] = 0
			}
			if resource.Blank(fields["activeGrants"]) {
				fields["activeGrants"] = 0
			}
			if resource.Blank(fields["partnershipStartDate"]) {
				fields["partnershipStartDate"] = util.Today()
			}
		},
		Filters: []resource.Filter{
			{Param: "status", Field: "status", Allowed: model.PartnerStatuses},
		},
		SortField: "organizationName",
		SortDesc:  false,
	}
}

// NewHandler binds the partner handlers to their record-store table.
func NewHandler(store *recordstore.Client, table string, logger *zap.Logger) *resource.Handler {
	return resource.New(store, table, Spec(), logger)
}
