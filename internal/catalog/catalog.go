// Package catalog reads sellers, products and SKUs from the Catalog service.
package catalog

import (
	"context"

	"github.com/katatrina/commerce-clients/internal/gateway"
	"github.com/katatrina/commerce-clients/internal/httpclient"
	"github.com/katatrina/commerce-clients/internal/iocontext"
	"github.com/katatrina/commerce-clients/internal/model"
)

const (
	MetricGetSeller                = "catalog-getSeller"
	MetricListSellers              = "catalog-listSellers"
	MetricGetSku                   = "catalog-getSku"
	MetricGetProduct               = "catalog-getProduct"
	MetricGetProductSpecifications = "catalog-getProductSpecifications"
)

type ICatalogProvider interface {
	GetSeller(ctx context.Context, sellerID string, opts *gateway.CallOptions) (*model.Seller, error)
	ListSellers(ctx context.Context, opts *gateway.CallOptions) ([]model.Seller, error)
	GetSku(ctx context.Context, skuID string, opts *gateway.CallOptions) (*model.SkuDetail, error)
	GetSkus(ctx context.Context, skuIDs []string, opts *gateway.CallOptions) ([]model.SkuDetail, error)
	GetProduct(ctx context.Context, productID string, opts *gateway.CallOptions) (*model.Product, error)
	GetProductSpecifications(ctx context.Context, productID string, opts *gateway.CallOptions) ([]model.ProductSpecification, error)
}

type Client struct {
	base gateway.Base
}

var _ ICatalogProvider = (*Client)(nil)

func NewClient(ioctx iocontext.Context, hc *httpclient.Client) (*Client, error) {
	base, err := gateway.NewBase(ioctx, hc)
	if err != nil {
		return nil, err
	}

	return &Client{base: base}, nil
}
