package api

import (
	"context"
	"net/http"

	"github.com/nbassil/campuslink/internal/client/models"
)

// DashboardClient fetches the admin dashboard summary.
type DashboardClient struct {
	c *Client
}

func NewDashboardClient(c *Client) *DashboardClient {
	return &DashboardClient{c: c}
}

func (d *DashboardClient) Fetch(ctx context.Context) (*models.DashboardData, error) {
	var out models.DashboardData
	if err := d.c.do(ctx, http.MethodGet, "/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
