package api

import (
	"context"
	"fmt"
	"net/http"
)

// CRUD is the generic resource client the typed clients build on. M is the
// model the backend returns, R the create/update payload.
type CRUD[M any, R any] struct {
	c    *Client
	path string
}

func newCRUD[M any, R any](c *Client, path string) CRUD[M, R] {
	return CRUD[M, R]{c: c, path: path}
}

// Find lists every resource.
func (r CRUD[M, R]) Find(ctx context.Context) ([]M, error) {
	var out []M
	if err := r.c.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindOne fetches a single resource by id.
func (r CRUD[M, R]) FindOne(ctx context.Context, id string) (*M, error) {
	var out M
	if err := r.c.do(ctx, http.MethodGet, r.path+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Count returns the resource count. The backend answers with a bare number.
func (r CRUD[M, R]) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.c.do(ctx, http.MethodGet, r.path+"/count", nil, &n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.path, err)
	}
	return n, nil
}

// Create posts a new resource and returns the created model.
func (r CRUD[M, R]) Create(ctx context.Context, req R) (*M, error) {
	var out M
	if err := r.c.do(ctx, http.MethodPost, r.path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the resource with the given id.
func (r CRUD[M, R]) Update(ctx context.Context, id string, req R) (*M, error) {
	var out M
	if err := r.c.do(ctx, http.MethodPut, r.path+"/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the resource with the given id.
func (r CRUD[M, R]) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, r.path+"/"+id, nil, nil)
}
