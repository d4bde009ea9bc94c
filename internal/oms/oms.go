// Package oms reads orders from the Order Management System.
package oms

import (
	"context"

	"github.com/katatrina/commerce-clients/internal/gateway"
	"github.com/katatrina/commerce-clients/internal/httpclient"
	"github.com/katatrina/commerce-clients/internal/iocontext"
	"github.com/katatrina/commerce-clients/internal/model"
)

const MetricGetOrder = "oms-getOrder"

const baseURL = "/api/oms"

func orderRoute(orderID string) string {
	return baseURL + "/pvt/orders/" + orderID
}

type IOrderProvider interface {
	GetOrder(ctx context.Context, orderID string, opts *gateway.CallOptions) (*model.Order, error)
}

type Client struct {
	base gateway.Base
}

var _ IOrderProvider = (*Client)(nil)

func NewClient(ioctx iocontext.Context, hc *httpclient.Client) (*Client, error) {
	base, err := gateway.NewBase(ioctx, hc)
	if err != nil {
		return nil, err
	}

	return &Client{base: base}, nil
}

// GetOrder fetches the full detail of an order.
func (c *Client) GetOrder(ctx context.Context, orderID string, opts *gateway.CallOptions) (*model.Order, error) {
	return gateway.Get[model.Order](ctx, c.base, MetricGetOrder, orderRoute(orderID), opts)
}
