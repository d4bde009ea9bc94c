package logistics

import (
	"context"

	"github.com/katatrina/commerce-clients/internal/gateway"
	"github.com/katatrina/commerce-clients/internal/model"
)

// GetDockByID fetches the configuration of a single dock.
func (c *Client) GetDockByID(ctx context.Context, dockID string, opts *gateway.CallOptions) (*model.LogisticDock, error) {
	return gateway.Get[model.LogisticDock](ctx, c.base, MetricGetDockByID, docksRoute(dockID), opts)
}
