package logistics

import (
	"context"

	"github.com/katatrina/commerce-clients/internal/gateway"
	"github.com/katatrina/commerce-clients/internal/model"
)

// Shipping fetches the public shipping configuration of the account.
func (c *Client) Shipping(ctx context.Context, opts *gateway.CallOptions) (*model.ShippingConfiguration, error) {
	return gateway.Get[model.ShippingConfiguration](ctx, c.base, MetricShipping, shippingRoute, opts)
}
