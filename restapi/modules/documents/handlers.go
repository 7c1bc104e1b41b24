// Package documents implements the REST API handlers for board documents.
package documents

import (
	"time"

	"go.uber.org/zap"

	"github.com/charis-foundation/board-backend/model"
	"github.com/charis-foundation/board-backend/recordstore"
	"github.com/charis-foundation/board-backend/restapi/modules/resource"
	"github.com/charis-foundation/board-backend/util"
)

// Spec declares the document CRUD behavior. Uploads default to board-level
// access in the catch-all category, stamped with today's date and the
// uploading member; every update stamps lastModified regardless of which
// fields changed.
func Spec() resource.Spec {
	return resource.Spec{
		Label:    "document",
		Plural:   "documents",
		BodyKey:  "document",
		Required: []string{"title", "fileUrl", "fileName"},
		Enums: map[string][]string{
			"category":    model.DocumentCategories,
			"accessLevel": model.AccessLevels,
		},
		Defaults: func(memberID string, fields map[string]interface{}) {
			if resource.Blank(fields["category"]) {
				fields["category"] = string(model.DocumentCategoryOther)
			}
			if resource.Blank(fields["accessLevel"]) {
				fields["accessLevel"] = string(model.AccessBoard)
			}
			if resource.Blank(fields["uploadDate"]) {
				fields["uploadDate"] = util.Today()
			}
			if resource.Blank(fields["uploadedBy"]) {
				fields["uploadedBy"] = memberID
			}
		},
		Filters: []resource.Filter{
			{Param: "category", Field: "category", Allowed: model.DocumentCategories},
			{Param: "accessLevel", Field: "accessLevel", Allowed: model.AccessLevels},
		},
		SortField: "uploadDate",
		SortDesc:  true,
		OnUpdate: func(fields map[string]interface{}) {
			fields["lastModified"] = time.Now().UTC().Format(time.RFC3339)
		},
	}
}

// NewHandler binds the document handlers to their record-store table.
func NewHandler(store *recordstore.Client, table string, logger *zap.Logger) *resource.Handler {
	return resource.New(store, table, Spec(), logger)
}
