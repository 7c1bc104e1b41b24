// Package resource implements the CRUD handler machinery shared by every
// entity module: list with enum filters, create with required-field validation
// and server-side defaults, and read/update/delete by record ID. Each entity
// module declares a Spec and mounts the five handlers; the behavior differences
// between entity types live entirely in their Specs.
package resource

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/charis-foundation/board-backend/model"
	"github.com/charis-foundation/board-backend/recordstore"
	"github.com/charis-foundation/board-backend/restapi/modules/auth"
	"github.com/charis-foundation/board-backend/util"
)

const defaultMaxRecords = 100

// Filter is one list-endpoint query parameter mapped to a record field
// equality test. When Allowed is set the parameter is a closed enum and
// unrecognized values are rejected rather than passed through. Bool marks
// checkbox fields, which compare against TRUE()/FALSE() instead of a string.
type Filter struct {
	Param   string
	Field   string
	Allowed []string
	Bool    bool
}

// Spec describes one entity type's CRUD behavior.
type Spec struct {
	Label    string   // singular, lowercase ("grant"), used in messages
	Plural   string   // plural, lowercase ("grants")
	BodyKey  string   // request body wrapper key ({"grant": {...}})
	Required []string // fields that must be present on create

	// Enums maps field names to their closed value sets. Values supplied on
	// create or update outside the set are rejected; handlers never pass an
	// unrecognized enum value through to the store.
	Enums map[string][]string

	// Defaults stamps server-derived values (dates, creator identity) into a
	// create payload. It must only fill fields the caller left absent, except
	// where the entity always stamps (documents' upload metadata).
	Defaults func(memberID string, fields map[string]interface{})

	Filters    []Filter
	UpcomingOn string // date field compared against today for ?upcoming=true

	SortField string
	SortDesc  bool

	// OnUpdate runs on every update payload before it reaches the store
	// (documents stamp lastModified here).
	OnUpdate func(fields map[string]interface{})
}

// Handler serves the five CRUD operations for one entity type.
type Handler struct {
	store  *recordstore.Client
	table  string
	spec   Spec
	logger *zap.Logger
}

// New builds a Handler bound to its record-store table.
func New(store *recordstore.Client, table string, spec Spec, logger *zap.Logger) *Handler {
	return &Handler{store: store, table: table, spec: spec, logger: logger}
}

// List handles GET /<plural>. Present filters are validated against their
// enums and AND-combined; results come back in the entity's default order,
// capped at maxRecords (default 100, client-overridable).
func (h *Handler) List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var parts []recordstore.Formula
		for _, f := range h.spec.Filters {
			val := c.Query(f.Param)
			if val == "" {
				continue
			}
			if len(f.Allowed) > 0 && !contains(f.Allowed, val) {
				return badRequest(c, fmt.Sprintf("Invalid %s value: %s", f.Param, val))
			}
			if f.Bool {
				parts = append(parts, recordstore.EqBool(f.Field, val == "true"))
			} else {
				parts = append(parts, recordstore.Eq(f.Field, val))
			}
		}
		if h.spec.UpcomingOn != "" && c.Query("upcoming") == "true" {
			parts = append(parts, recordstore.IsAfter(h.spec.UpcomingOn, util.Today()))
		}

		direction := "asc"
		if h.spec.SortDesc {
			direction = "desc"
		}

		records, err := h.store.List(c.Context(), h.table, recordstore.ListOptions{
			MaxRecords: c.QueryInt("maxRecords", defaultMaxRecords),
			Filter:     recordstore.And(parts...),
			Sort:       []recordstore.SortField{{Field: h.spec.SortField, Direction: direction}},
		})
		if err != nil {
			return h.storeFailure(c, "fetch", err)
		}

		data := make([]map[string]interface{}, len(records))
		for i, rec := range records {
			data[i] = rec.Merged()
		}
		return c.JSON(model.OK(data))
	}
}

// Create handles POST /<plural>. Required fields are checked before any store
// call; enum fields are validated; server-derived defaults are stamped only
// when the caller left them out. Responds 201 with the created entity
// including its store-assigned ID.
func (h *Handler) Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, errResp := h.payload(c)
		if errResp != nil {
			return errResp(c)
		}

		for _, req := range h.spec.Required {
			if Blank(fields[req]) {
				return badRequest(c, "Missing required fields: "+strings.Join(h.spec.Required, ", "))
			}
		}
		if resp := h.validateEnums(fields); resp != nil {
			return resp(c)
		}
		if h.spec.Defaults != nil {
			h.spec.Defaults(auth.MemberID(c), fields)
		}

		rec, err := h.store.Create(c.Context(), h.table, fields)
		if err != nil {
			return h.storeFailure(c, "create", err)
		}
		return c.Status(fiber.StatusCreated).
			JSON(model.OKMessage(rec.Merged(), firstUpper(h.spec.Label)+" created successfully"))
	}
}

// Get handles GET /<plural>/:id.
func (h *Handler) Get() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return badRequest(c, firstUpper(h.spec.Label)+" ID is required")
		}
		rec, err := h.store.Get(c.Context(), h.table, id)
		if err != nil {
			return h.storeFailure(c, "fetch", err)
		}
		return c.JSON(model.OK(rec.Merged()))
	}
}

// Update handles PUT /<plural>/:id with partial-merge semantics: fields absent
// from the payload are left untouched in the store.
func (h *Handler) Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return badRequest(c, firstUpper(h.spec.Label)+" ID is required")
		}
		fields, errResp := h.payload(c)
		if errResp != nil {
			return errResp(c)
		}
		if resp := h.validateEnums(fields); resp != nil {
			return resp(c)
		}
		if h.spec.OnUpdate != nil {
			h.spec.OnUpdate(fields)
		}

		rec, err := h.store.Update(c.Context(), h.table, id, fields)
		if err != nil {
			return h.storeFailure(c, "update", err)
		}
		return c.JSON(model.OKMessage(rec.Merged(), firstUpper(h.spec.Label)+" updated successfully"))
	}
}

// Delete handles DELETE /<plural>/:id. Deletion is permanent and immediate in
// the record store; there is no tombstone.
func (h *Handler) Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return badRequest(c, firstUpper(h.spec.Label)+" ID is required")
		}
		if _, err := h.store.Delete(c.Context(), h.table, id); err != nil {
			return h.storeFailure(c, "delete", err)
		}
		return c.JSON(model.APIResponse{
			Success: true,
			Message: firstUpper(h.spec.Label) + " deleted successfully",
		})
	}
}

// payload extracts the wrapped entity object from the request body. The
// store-assigned ID is never writable, so any "id" key is dropped.
func (h *Handler) payload(c *fiber.Ctx) (map[string]interface{}, func(*fiber.Ctx) error) {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		msg := "Invalid request body"
		return nil, func(c *fiber.Ctx) error { return badRequest(c, msg) }
	}
	fields, ok := body[h.spec.BodyKey].(map[string]interface{})
	if !ok {
		msg := fmt.Sprintf("Request body must include a %s object", h.spec.BodyKey)
		return nil, func(c *fiber.Ctx) error { return badRequest(c, msg) }
	}
	delete(fields, "id")
	return fields, nil
}

func (h *Handler) validateEnums(fields map[string]interface{}) func(*fiber.Ctx) error {
	for field, allowed := range h.spec.Enums {
		val, present := fields[field]
		if !present || val == nil {
			continue
		}
		s, ok := val.(string)
		if !ok || !contains(allowed, s) {
			msg := fmt.Sprintf("Invalid %s value: %v", field, val)
			return func(c *fiber.Ctx) error { return badRequest(c, msg) }
		}
	}
	return nil
}

func (h *Handler) storeFailure(c *fiber.Ctx, op string, err error) error {
	h.logger.Error("record store operation failed",
		zap.String("resource", h.spec.Plural),
		zap.String("op", op),
		zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(model.Fail(err.Error()))
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(model.Fail(msg))
}

// Blank reports whether a field value counts as missing: absent, null, empty
// string, or a zero amount. Entity Specs use it when deciding whether to stamp
// a default.
func Blank(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return val == 0
	default:
		return false
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func firstUpper(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
