package logistics

import (
	"context"

	"github.com/katatrina/commerce-clients/internal/gateway"
	"github.com/katatrina/commerce-clients/internal/model"
)

const (
	// DefaultMaxDistance is the search radius used when none is given.
	DefaultMaxDistance = 50

	// PickupSearchPageSize caps how many pickup points a nearby search returns.
	// Only the first page is ever requested.
	PickupSearchPageSize = 100
)

// NearPickupPointsParams locates a nearby search. Lat and Long are sent as
// given. A nil MaxDistance means DefaultMaxDistance; an explicit zero is sent.
type NearPickupPointsParams struct {
	Lat         string
	Long        string
	MaxDistance *float64
}

func (p NearPickupPointsParams) maxDistance() float64 {
	if p.MaxDistance == nil {
		return DefaultMaxDistance
	}
	return *p.MaxDistance
}

// PickupByID fetches a single pickup point.
func (c *Client) PickupByID(ctx context.Context, id string, opts *gateway.CallOptions) (*model.LogisticPickupPoint, error) {
	return gateway.Get[model.LogisticPickupPoint](ctx, c.base, MetricPickupByID, pickupByIDRoute(id), opts)
}

// ListPickupPoints fetches the pickup points of the account.
func (c *Client) ListPickupPoints(ctx context.Context, opts *gateway.CallOptions) (*model.LogisticOutput, error) {
	return gateway.Get[model.LogisticOutput](ctx, c.base, MetricListPickupPoints, pickupPointsRoute, opts)
}

// NearPickupPoints searches pickup points around a coordinate. Matches beyond
// the first PickupSearchPageSize are not retrievable through this call; see
// model.LogisticOutput.Truncated.
func (c *Client) NearPickupPoints(ctx context.Context, params NearPickupPointsParams, opts *gateway.CallOptions) (*model.LogisticOutput, error) {
	path := nearPickupPointsRoute(params.Lat, params.Long, params.maxDistance())

	return gateway.Get[model.LogisticOutput](ctx, c.base, MetricNearPickupPoints, path, opts)
}
