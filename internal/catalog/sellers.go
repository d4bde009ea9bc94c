package catalog

import (
	"context"

	"github.com/katatrina/commerce-clients/internal/gateway"
	"github.com/katatrina/commerce-clients/internal/model"
)

// GetSeller fetches the registration record of a seller.
func (c *Client) GetSeller(ctx context.Context, sellerID string, opts *gateway.CallOptions) (*model.Seller, error) {
	return gateway.Get[model.Seller](ctx, c.base, MetricGetSeller, sellerRoute(sellerID), opts)
}

// ListSellers fetches every seller registered in the account.
// An empty body yields an empty list.
func (c *Client) ListSellers(ctx context.Context, opts *gateway.CallOptions) ([]model.Seller, error) {
	sellers, err := gateway.Get[[]model.Seller](ctx, c.base, MetricListSellers, sellerListRoute, opts)
	if err != nil {
		return nil, err
	}

	return *sellers, nil
}
