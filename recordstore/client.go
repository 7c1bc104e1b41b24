// Package recordstore - Handles all interaction with the external tabular
// record service. The service stores one table per entity type and is
// addressed by a base ID plus a bearer API key; rows come back as
// {id, fields, createdTime} tuples and are filtered with a formula string
// evaluated on the service side.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultBaseURL is the public endpoint of the record service.
const DefaultBaseURL = "https://api.airtable.com/v0"

// InitLogger sets up the Zap Logger to log to the console in a human readable format
func InitLogger() *zap.Logger {
	prodConfig := zap.NewProductionConfig()
	prodConfig.Encoding = "console"
	prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	prodConfig.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	logger, _ := prodConfig.Build()
	return logger
}

// Config carries the credentials and endpoint for one record-store base.
type Config struct {
	BaseURL string // service endpoint, DefaultBaseURL unless overridden (tests)
	BaseID  string
	APIKey  string
}

// Client wraps HTTP access to one record-store base. Construct it once at
// startup and pass it to the handlers that need it.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

// NewClient builds a Client for the configured base.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 90 * time.Second,
				}).DialContext,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		baseURL: baseURL + "/" + cfg.BaseID,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// Record is one row returned by the record store. The ID is assigned by the
// store on creation and is immutable.
type Record struct {
	ID          string                 `json:"id"`
	Fields      map[string]interface{} `json:"fields"`
	CreatedTime string                 `json:"createdTime"`
}

// Merged returns the record's field set with the store-assigned ID folded in,
// which is the shape every API route serves.
func (r Record) Merged() map[string]interface{} {
	merged := make(map[string]interface{}, len(r.Fields)+1)
	for k, v := range r.Fields {
		merged[k] = v
	}
	merged["id"] = r.ID
	return merged
}

// DecodeFields maps a record's field set (plus its ID) onto a typed model.
func DecodeFields[T any](rec Record) (T, error) {
	var out T
	raw, err := json.Marshal(rec.Merged())
	if err != nil {
		return out, fmt.Errorf("failed to encode record %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode record %s: %w", rec.ID, err)
	}
	return out, nil
}

// SortField is one sort key with its direction ("asc" or "desc").
type SortField struct {
	Field     string
	Direction string
}

// ListOptions are the optional query parameters for List.
type ListOptions struct {
	MaxRecords int
	Filter     Formula
	Sort       []SortField
	View       string
}

// DeleteAck is the store's acknowledgement of a permanent deletion.
type DeleteAck struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// APIError is returned for any non-2xx response from the record store,
// carrying the HTTP status and the service's error payload. Callers treat
// every store failure uniformly; there is no retry.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("record store error: status %d - %s", e.StatusCode, e.Body)
}

type listResponse struct {
	Records []Record `json:"records"`
}

// List returns the records of a table matching the given options.
func (c *Client) List(ctx context.Context, table string, opts ListOptions) ([]Record, error) {
	params := url.Values{}
	if opts.MaxRecords > 0 {
		params.Set("maxRecords", strconv.Itoa(opts.MaxRecords))
	}
	if opts.Filter != "" {
		params.Set("filterByFormula", string(opts.Filter))
	}
	if opts.View != "" {
		params.Set("view", opts.View)
	}
	for i, s := range opts.Sort {
		params.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		params.Set(fmt.Sprintf("sort[%d][direction]", i), s.Direction)
	}

	path := "/" + table
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp listResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// Get fetches a single record by its store-assigned ID.
func (c *Client) Get(ctx context.Context, table, id string) (Record, error) {
	var rec Record
	err := c.do(ctx, http.MethodGet, "/"+table+"/"+id, nil, &rec)
	return rec, err
}

// Create inserts a new record; the store assigns the ID.
func (c *Client) Create(ctx context.Context, table string, fields map[string]interface{}) (Record, error) {
	var rec Record
	body := map[string]interface{}{"fields": fields}
	err := c.do(ctx, http.MethodPost, "/"+table, body, &rec)
	return rec, err
}

// Update merges the given fields into an existing record. Fields not present
// in the set are left untouched (partial PATCH semantics).
func (c *Client) Update(ctx context.Context, table, id string, fields map[string]interface{}) (Record, error) {
	var rec Record
	body := map[string]interface{}{"fields": fields}
	err := c.do(ctx, http.MethodPatch, "/"+table+"/"+id, body, &rec)
	return rec, err
}

// Delete permanently removes a record. There is no tombstone; a subsequent
// Get on the same ID fails.
func (c *Client) Delete(ctx context.Context, table, id string) (DeleteAck, error) {
	var ack DeleteAck
	err := c.do(ctx, http.MethodDelete, "/"+table+"/"+id, nil, &ack)
	return ack, err
}

// Search lists records whose given fields contain the term as a
// case-insensitive substring. This is a formula-based filter, not ranked
// full-text search.
func (c *Client) Search(ctx context.Context, table, term string, fields []string) ([]Record, error) {
	parts := make([]Formula, len(fields))
	for i, f := range fields {
		parts[i] = FindLower(f, term)
	}
	return c.List(ctx, table, ListOptions{Filter: Or(parts...)})
}

// Ping verifies the base is reachable with the configured credentials by
// listing a single record. Used only during startup.
func (c *Client) Ping(ctx context.Context, table string) error {
	_, err := c.List(ctx, table, ListOptions{MaxRecords: 1})
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach record store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Warn("record store request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode record store response: %w", err)
	}
	return nil
}
