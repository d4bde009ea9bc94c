package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/katatrina/commerce-clients/internal/catalog"
	"github.com/katatrina/commerce-clients/internal/gateway"
	"github.com/katatrina/commerce-clients/internal/httpclient"
	"github.com/katatrina/commerce-clients/internal/iocontext"
	"github.com/katatrina/commerce-clients/internal/logistics"
	"github.com/katatrina/commerce-clients/internal/oms"
	"github.com/rs/zerolog/log"
)

type clients struct {
	logistics logistics.ILogisticsProvider
	oms       oms.IOrderProvider
	catalog   catalog.ICatalogProvider
}

func newClients(ioctx iocontext.Context, hc *httpclient.Client) (clients, error) {
	logisticsClient, err := logistics.NewClient(ioctx, hc)
	if err != nil {
		return clients{}, fmt.Errorf("failed to create logistics client: %w", err)
	}

	omsClient, err := oms.NewClient(ioctx, hc)
	if err != nil {
		return clients{}, fmt.Errorf("failed to create oms client: %w", err)
	}

	catalogClient, err := catalog.NewClient(ioctx, hc)
	if err != nil {
		return clients{}, fmt.Errorf("failed to create catalog client: %w", err)
	}

	return clients{
		logistics: logisticsClient,
		oms:       omsClient,
		catalog:   catalogClient,
	}, nil
}

type input struct {
	args        []string
	opts        *gateway.CallOptions
	maxDistance *float64
}

// anyArgs marks commands taking one or more arguments.
const anyArgs = -1

type command struct {
	usage string
	args  int
	run   func(ctx context.Context, c clients, in input) (any, error)
}

var commands = map[string]command{
	"dock": {
		usage: "dock <dockId>",
		args:  1,
		run: func(ctx context.Context, c clients, in input) (any, error) {
			return c.logistics.GetDockByID(ctx, in.args[0], in.opts)
		},
	},
	"pickup": {
		usage: "pickup <pickupPointId>",
		args:  1,
		run: func(ctx context.Context, c clients, in input) (any, error) {
			return c.logistics.PickupByID(ctx, in.args[0], in.opts)
		},
	},
	"pickups": {
		usage: "pickups",
		run: func(ctx context.Context, c clients, in input) (any, error) {
			return c.logistics.ListPickupPoints(ctx, in.opts)
		},
	},
	"near": {
		usage: "near <lat> <lon>",
		args:  2,
		run: func(ctx context.Context, c clients, in input) (any, error) {
			output, err := c.logistics.NearPickupPoints(ctx, logistics.NearPickupPointsParams{
				Lat:         in.args[0],
				Long:        in.args[1],
				MaxDistance: in.maxDistance,
			}, in.opts)
			if err != nil {
				return nil, err
			}
			if output.Truncated() {
				log.Warn().
					Int("returned", len(output.Items)).
					Int("total", output.Paging.Total).
					Msg("more pickup points match than a single search returns")
			}
			return output, nil
		},
	},
	"shipping": {
		usage: "shipping",
		run: func(ctx context.Context, c clients, in input) (any, error) {
			return c.logistics.Shipping(ctx, in.opts)
		},
	},
	"order": {
		usage: "order <orderId>",
		args:  1,
		run: func(ctx context.Context, c clients, in input) (any, error) {
			order, err := c.oms.GetOrder(ctx, in.args[0], in.opts)
			if err != nil {
				return nil, err
			}
			log.Info().
				Str("order_id", order.OrderID).
				Str("status", order.Status).
				Int("items", len(order.Items)).
				Str("total", order.StorePreferencesData.FormatAmount(order.Value)).
				Msg("order loaded ✅")
			return order, nil
		},
	},
	"seller": {
		usage: "seller <sellerId>",
		args:  1,
		run: func(ctx context.Context, c clients, in input) (any, error) {
			return c.catalog.GetSeller(ctx, in.args[0], in.opts)
		},
	},
	"sellers": {
		usage: "sellers",
		run: func(ctx context.Context, c clients, in input) (any, error) {
			return c.catalog.ListSellers(ctx, in.opts)
		},
	},
	"sku": {
		usage: "sku <skuId>",
		args:  1,
		run: func(ctx context.Context, c clients, in input) (any, error) {
			return c.catalog.GetSku(ctx, in.args[0], in.opts)
		},
	},
	"skus": {
		usage: "skus <skuId>...",
		args:  anyArgs,
		run: func(ctx context.Context, c clients, in input) (any, error) {
			return c.catalog.GetSkus(ctx, in.args, in.opts)
		},
	},
	"product": {
		usage: "product <productId>",
		args:  1,
		run: func(ctx context.Context, c clients, in input) (any, error) {
			return c.catalog.GetProduct(ctx, in.args[0], in.opts)
		},
	},
	"specs": {
		usage: "specs <productId>",
		args:  1,
		run: func(ctx context.Context, c clients, in input) (any, error) {
			return c.catalog.GetProductSpecifications(ctx, in.args[0], in.opts)
		},
	},
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// run dispatches args[0] to its command with the remaining args.
func run(ctx context.Context, c clients, args []string, in input) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing command")
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", args[0])
	}

	in.args = args[1:]
	if (cmd.args == anyArgs && len(in.args) == 0) || (cmd.args != anyArgs && len(in.args) != cmd.args) {
		return nil, fmt.Errorf("usage: %s", cmd.usage)
	}

	return cmd.run(ctx, c, in)
}
