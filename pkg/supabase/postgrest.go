package supabase

import (
	"context"
	"net/http"
	"net/url"
)

// Query builds a single PostgREST request against one table.
type Query struct {
	client *Client
	table  string
	params url.Values
}

// From starts a query against the given table.
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table, params: url.Values{}}
}

// Select restricts the returned columns. Defaults to "*" when never called.
func (q *Query) Select(columns string) *Query {
	q.params.Set("select", columns)
	return q
}

// Eq adds an equality filter on the given column.
func (q *Query) Eq(column, value string) *Query {
	q.params.Set(column, "eq."+value)
	return q
}

// Order sorts the result by the given column.
func (q *Query) Order(column string, ascending bool) *Query {
	direction := ".desc"
	if ascending {
		direction = ".asc"
	}
	q.params.Set("order", column+direction)
	return q
}

func (q *Query) path() string {
	if q.params.Get("select") == "" {
		q.params.Set("select", "*")
	}
	return "/rest/v1/" + q.table + "?" + q.params.Encode()
}

// Get executes the query and decodes the rows into dest.
func (q *Query) Get(ctx context.Context, dest any) error {
	resp, err := q.client.do(ctx, http.MethodGet, q.path(), nil, nil)
	if err != nil {
		return err
	}
	return decodeInto(resp, dest)
}

// Insert appends rows. The payload may be a single row or a slice.
func (q *Query) Insert(ctx context.Context, payload any) error {
	headers := http.Header{}
	headers.Set("Prefer", "return=minimal")
	resp, err := q.client.do(ctx, http.MethodPost, q.path(), headers, payload)
	if err != nil {
		return err
	}
	return decodeInto(resp, nil)
}

// Upsert merges rows on the given conflict target, so repeating the same
// write converges on one row instead of erroring or duplicating.
func (q *Query) Upsert(ctx context.Context, payload any, onConflict string) error {
	q.params.Set("on_conflict", onConflict)
	headers := http.Header{}
	headers.Set("Prefer", "resolution=merge-duplicates,return=minimal")
	resp, err := q.client.do(ctx, http.MethodPost, q.path(), headers, payload)
	if err != nil {
		return err
	}
	return decodeInto(resp, nil)
}
