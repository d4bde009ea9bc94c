package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katatrina/commerce-clients/internal/tracing"
	"github.com/katatrina/commerce-clients/internal/util"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// RequestOptions describes a single call.
type RequestOptions struct {
	Headers map[string]string
	Metric  string
	Tracing tracing.Config
}

// Get issues a GET for path and decodes the JSON body into T.
//
// Transport failures and non-2xx responses are returned as they happened;
// the latter as *ResponseError. An empty 2xx body yields the zero T.
func Get[T any](ctx context.Context, c *Client, path string, opts RequestOptions) (*T, error) {
	operationID := util.GenerateOperationID()

	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", http.MethodGet),
		attribute.String("url.path", path),
		attribute.String("metric", opts.Metric),
		attribute.String("operation.id", operationID),
	}

	span := trace.SpanFromContext(ctx)
	if !opts.Tracing.Disabled {
		if opts.Tracing.Parent.IsValid() {
			ctx = trace.ContextWithSpanContext(ctx, opts.Tracing.Parent)
		}
		ctx, span = c.tracer.Start(ctx, opts.Metric,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attrs...),
			trace.WithAttributes(opts.Tracing.Attributes...),
		)
		defer span.End()
	}

	headers := make(map[string]string, len(opts.Headers))
	for key, value := range opts.Headers {
		headers[key] = value
	}
	if !opts.Tracing.DisablePropagation {
		c.propagator.Inject(ctx, propagation.MapCarrier(headers))
	}

	start := time.Now()
	resp, err := c.resty.R().
		SetContext(ctx).
		SetHeaders(headers).
		Get(path)
	elapsed := time.Since(start)

	if err != nil {
		c.record(ctx, opts.Metric, 0, elapsed)
		if !opts.Tracing.Disabled {
			span.RecordError(err)
			span.SetStatus(codes.Error, "transport failure")
		}
		log.Error().
			Err(err).
			Str("metric", opts.Metric).
			Str("operation_id", operationID).
			Msg("request failed")
		return nil, fmt.Errorf("%s: error sending request: %w", opts.Metric, err)
	}

	body := resp.Bytes()
	c.record(ctx, opts.Metric, resp.StatusCode(), elapsed)
	if !opts.Tracing.Disabled {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode()))
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		responseErr := &ResponseError{
			Metric:     opts.Metric,
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       string(body),
		}
		if !opts.Tracing.Disabled {
			span.SetStatus(codes.Error, resp.Status())
		}
		log.Warn().
			Str("metric", opts.Metric).
			Str("operation_id", operationID).
			Int("status", resp.StatusCode()).
			Dur("duration", elapsed).
			Msg("request returned non-2xx status")
		return nil, responseErr
	}

	log.Debug().
		Str("metric", opts.Metric).
		Str("operation_id", operationID).
		Int("status", resp.StatusCode()).
		Str("duration", elapsed.String()).
		Str("size", humanize.Bytes(uint64(len(body)))).
		Msg("request completed")

	var result T
	if len(body) == 0 {
		return &result, nil
	}
	if err = json.Unmarshal(body, &result); err != nil {
		if !opts.Tracing.Disabled {
			span.RecordError(err)
			span.SetStatus(codes.Error, "undecodable response body")
		}
		return nil, fmt.Errorf("%s: error unmarshalling response: %w", opts.Metric, err)
	}

	return &result, nil
}

func (c *Client) record(ctx context.Context, name string, statusCode int, elapsed time.Duration) {
	c.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("metric", name),
		attribute.Int("http.response.status_code", statusCode),
	))
}
