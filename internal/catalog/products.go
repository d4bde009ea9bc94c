package catalog

import (
	"context"
	"fmt"

	"github.com/katatrina/commerce-clients/internal/gateway"
	"github.com/katatrina/commerce-clients/internal/model"
	"golang.org/x/sync/errgroup"
)

func (c *Client) GetSku(ctx context.Context, skuID string, opts *gateway.CallOptions) (*model.SkuDetail, error) {
	return gateway.Get[model.SkuDetail](ctx, c.base, MetricGetSku, skuRoute(skuID), opts)
}

func (c *Client) GetProduct(ctx context.Context, productID string, opts *gateway.CallOptions) (*model.Product, error) {
	return gateway.Get[model.Product](ctx, c.base, MetricGetProduct, productRoute(productID), opts)
}

// GetProductSpecifications fetches the specification values set on a product.
func (c *Client) GetProductSpecifications(ctx context.Context, productID string, opts *gateway.CallOptions) ([]model.ProductSpecification, error) {
	specs, err := gateway.Get[[]model.ProductSpecification](ctx, c.base, MetricGetProductSpecifications, productSpecificationsRoute(productID), opts)
	if err != nil {
		return nil, err
	}

	return *specs, nil
}

// MaxConcurrentLookups bounds how many SKU requests GetSkus keeps in flight.
const MaxConcurrentLookups = 8

// GetSkus fetches several SKUs concurrently. Results keep the order of skuIDs;
// the first failure cancels the remaining lookups.
func (c *Client) GetSkus(ctx context.Context, skuIDs []string, opts *gateway.CallOptions) ([]model.SkuDetail, error) {
	skus := make([]model.SkuDetail, len(skuIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentLookups)

	for i, skuID := range skuIDs {
		g.Go(func() error {
			sku, err := c.GetSku(ctx, skuID, opts)
			if err != nil {
				return fmt.Errorf("failed to get sku %s: %w", skuID, err)
			}
			skus[i] = *sku
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return skus, nil
}
