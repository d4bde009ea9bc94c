// Package gateway is the call pipeline shared by the service clients: it
// resolves the credential, tags the call for tracing and metrics, and hands
// the request to the HTTP primitive.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/katatrina/commerce-clients/internal/auth"
	"github.com/katatrina/commerce-clients/internal/httpclient"
	"github.com/katatrina/commerce-clients/internal/iocontext"
	"github.com/katatrina/commerce-clients/internal/token"
	"github.com/katatrina/commerce-clients/internal/tracing"
	"github.com/rs/zerolog/log"
)

// CallOptions are the optional knobs of every operation. A nil *CallOptions
// is the same as the zero value.
type CallOptions struct {
	// AuthMethod defaults to auth.DefaultMethod.
	AuthMethod auth.Method

	// Tracing overrides sampling and propagation; the metric name is fixed.
	Tracing *tracing.Config
}

func (o *CallOptions) withDefaults() CallOptions {
	var opts CallOptions
	if o != nil {
		opts = *o
	}
	if opts.AuthMethod == "" {
		opts.AuthMethod = auth.DefaultMethod
	}
	return opts
}

// Base carries what every service client needs to issue a call.
type Base struct {
	ioctx *iocontext.Context
	http  *httpclient.Client
}

// NewBase validates ioctx and binds it to hc.
func NewBase(ioctx iocontext.Context, hc *httpclient.Client) (Base, error) {
	if err := ioctx.Validate(); err != nil {
		return Base{}, err
	}
	if hc == nil {
		return Base{}, fmt.Errorf("gateway: http client is required")
	}

	ioctx = ioctx.WithDefaults()
	return Base{ioctx: &ioctx, http: hc}, nil
}

// NewHTTPClient creates the HTTP primitive routed to the host ioctx targets.
func NewHTTPClient(ioctx iocontext.Context, timeout time.Duration) (*httpclient.Client, error) {
	if err := ioctx.Validate(); err != nil {
		return nil, err
	}

	ioctx = ioctx.WithDefaults()
	return httpclient.New(httpclient.Config{
		BaseURL:   ioctx.Host(),
		UserAgent: ioctx.UserAgent,
		Timeout:   timeout,
		Headers:   ioctx.RoutingHeaders(),
	})
}

// Context returns a copy of the execution context the base was built with.
func (b Base) Context() iocontext.Context {
	return *b.ioctx
}

// Request builds the options of a call without issuing it.
func (b Base) Request(metric string, opts *CallOptions) httpclient.RequestOptions {
	o := opts.withDefaults()
	if !o.AuthMethod.Valid() {
		log.Warn().
			Str("metric", metric).
			Str("auth_method", o.AuthMethod.String()).
			Msg("unknown auth method, sending request without credentials")
	}

	return httpclient.RequestOptions{
		Headers: auth.Headers(b.ioctx, o.AuthMethod),
		Metric:  metric,
		Tracing: tracing.Create(metric, o.Tracing),
	}
}

// Get runs the full pipeline for one operation and decodes the response as T.
// Failures from the transport are returned unchanged.
func Get[T any](ctx context.Context, b Base, metric, path string, opts *CallOptions) (*T, error) {
	request := b.Request(metric, opts)
	warnIfExpired(metric, request.Headers[auth.CookieHeader])

	return httpclient.Get[T](ctx, b.http, path, request)
}

// warnIfExpired logs credentials the platform is going to reject. The call
// is still issued.
func warnIfExpired(metric, credential string) {
	if credential == "" {
		return
	}

	payload, err := token.Inspect(credential)
	if err != nil {
		return
	}

	if payload.Expired(time.Now()) {
		log.Warn().
			Str("metric", metric).
			Str("account", payload.Account).
			Time("expired_at", payload.ExpiresAt.Time).
			Msg("credential is expired")
	}
}
