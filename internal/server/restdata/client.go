// Package restdata implements a thin client for a REST-fronted tabular data
// service (PostgREST-style). Rows are addressed by resource name and
// exact-match column filters serialized as "column=eq.<value>".
//
// Every call is bounded by a per-call deadline; a call that exceeds its
// budget fails with common.ErrTimeout, which callers can distinguish from a
// downstream non-2xx failure. Exactly one attempt is made per call: no
// retry, no backoff.
package restdata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"digidiary/internal/common"
)

// Config carries the connection settings for the data service. It is passed
// explicitly at construction; the client keeps no package-level state.
type Config struct {
	BaseURL      string
	APIKey       string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

const (
	DefaultReadTimeout  = 2 * time.Second
	DefaultWriteTimeout = 3 * time.Second
)

type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	return &Client{cfg: cfg, http: &http.Client{}}
}

// QueryOptions narrows a Query call. Filters are exact-match column=value
// pairs; a zero Limit means no limit.
type QueryOptions struct {
	Select    string
	Filters   map[string]any
	OrderBy   string
	Ascending bool
	Limit     int
}

// Query fetches the rows of resource matching opts and decodes the JSON
// array into dest (a pointer to a slice).
func (c *Client) Query(ctx context.Context, resource string, opts QueryOptions, dest any) error {
	q := url.Values{}
	if opts.Select != "" {
		q.Set("select", opts.Select)
	}
	addFilters(q, opts.Filters)
	if opts.OrderBy != "" {
		dir := "desc"
		if opts.Ascending {
			dir = "asc"
		}
		q.Set("order", opts.OrderBy+"."+dir)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	body, err := c.do(ctx, http.MethodGet, resource, q, nil, c.cfg.ReadTimeout)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return json.Unmarshal(body, dest)
}

// Insert creates a row and decodes the created representation into dest
// (a pointer to a struct), if dest is non-nil.
func (c *Client) Insert(ctx context.Context, resource string, record any, dest any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, resource, nil, payload, c.cfg.WriteTimeout)
	if err != nil {
		return err
	}
	return decodeSingle(body, dest)
}

// Update patches the rows matching filters and decodes the first updated
// representation into dest. If no row matched, common.ErrNotFound is
// returned; combined with an owner filter this doubles as the ownership
// check.
func (c *Client) Update(ctx context.Context, resource string, filters map[string]any, patch any, dest any) error {
	payload, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode patch: %w", err)
	}
	q := url.Values{}
	addFilters(q, filters)
	body, err := c.do(ctx, http.MethodPatch, resource, q, payload, c.cfg.WriteTimeout)
	if err != nil {
		return err
	}
	return decodeSingle(body, dest)
}

// Delete removes the rows matching filters. Deleting zero rows returns
// common.ErrNotFound.
func (c *Client) Delete(ctx context.Context, resource string, filters map[string]any) error {
	q := url.Values{}
	addFilters(q, filters)
	body, err := c.do(ctx, http.MethodDelete, resource, q, nil, c.cfg.WriteTimeout)
	if err != nil {
		return err
	}
	return decodeSingle(body, nil)
}

func (c *Client) do(ctx context.Context, method, resource string, q url.Values, payload []byte, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u := c.cfg.BaseURL + "/" + resource
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s %s: %w", method, resource, common.ErrTimeout)
		}
		return nil, fmt.Errorf("%s %s: %w", method, resource, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s %s: %w", method, resource, common.ErrTimeout)
		}
		return nil, fmt.Errorf("%s %s: read body: %w", method, resource, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusConflict {
			return nil, fmt.Errorf("%s %s: %w", method, resource, common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("%s %s: store responded %d: %s", method, resource, resp.StatusCode, body)
	}
	return body, nil
}

// decodeSingle interprets a representation array returned by a write call.
// An empty array means no row matched the filters.
func decodeSingle(body []byte, dest any) error {
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return fmt.Errorf("decode representation: %w", err)
	}
	if len(rows) == 0 {
		return common.ErrNotFound
	}
	if dest == nil {
		return nil
	}
	return json.Unmarshal(rows[0], dest)
}

func addFilters(q url.Values, filters map[string]any) {
	for col, v := range filters {
		q.Set(col, "eq."+formatValue(v))
	}
}

// formatValue stringifies a filter value; booleans become "true"/"false".
func formatValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
