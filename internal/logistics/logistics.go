// Package logistics reads dock and pickup point configuration from the
// Logistics service.
package logistics

import (
	"context"

	"github.com/katatrina/commerce-clients/internal/gateway"
	"github.com/katatrina/commerce-clients/internal/httpclient"
	"github.com/katatrina/commerce-clients/internal/iocontext"
	"github.com/katatrina/commerce-clients/internal/model"
)

const (
	MetricGetDockByID      = "logistics-getDockById"
	MetricPickupByID       = "logistics-pickupById"
	MetricListPickupPoints = "logistics-listPickupPoints"
	MetricNearPickupPoints = "logistics-nearPickupPoints"
	MetricShipping         = "logistics-shipping"
)

type ILogisticsProvider interface {
	GetDockByID(ctx context.Context, dockID string, opts *gateway.CallOptions) (*model.LogisticDock, error)
	PickupByID(ctx context.Context, id string, opts *gateway.CallOptions) (*model.LogisticPickupPoint, error)
	ListPickupPoints(ctx context.Context, opts *gateway.CallOptions) (*model.LogisticOutput, error)
	NearPickupPoints(ctx context.Context, params NearPickupPointsParams, opts *gateway.CallOptions) (*model.LogisticOutput, error)
	Shipping(ctx context.Context, opts *gateway.CallOptions) (*model.ShippingConfiguration, error)
}

type Client struct {
	base gateway.Base
}

var _ ILogisticsProvider = (*Client)(nil)

func NewClient(ioctx iocontext.Context, hc *httpclient.Client) (*Client, error) {
	base, err := gateway.NewBase(ioctx, hc)
	if err != nil {
		return nil, err
	}

	return &Client{base: base}, nil
}
