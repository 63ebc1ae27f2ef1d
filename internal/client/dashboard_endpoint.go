package client

import (
	"context"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/model"
)

// DashboardEndpoint /dashboard
type DashboardEndpoint struct {
	transport *Transport
}

// Summary GET /dashboard
func (d *DashboardEndpoint) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	var res model.DashboardSummary
	if err := d.transport.Get(ctx, "/dashboard", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
