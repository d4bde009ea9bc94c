// Package httpclient is the GET primitive every service client issues its
// calls through. It owns connection handling, response decoding, tracing and
// request metrics. It does not retry.
package httpclient

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"resty.dev/v3"
)

const instrumentationName = "github.com/katatrina/commerce-clients/internal/httpclient"

const DefaultTimeout = 30 * time.Second

var ErrMissingBaseURL = errors.New("httpclient: base URL is required")

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Headers are sent with every request.
	Headers map[string]string

	// Optional; the otel globals are used when nil.
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
	Propagator     propagation.TextMapPropagator
}

type Client struct {
	resty      *resty.Client
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	duration   metric.Float64Histogram
}

// New creates a client bound to config.BaseURL.
func New(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.TracerProvider == nil {
		config.TracerProvider = otel.GetTracerProvider()
	}
	if config.MeterProvider == nil {
		config.MeterProvider = otel.GetMeterProvider()
	}
	if config.Propagator == nil {
		config.Propagator = otel.GetTextMapPropagator()
	}

	duration, err := config.MeterProvider.Meter(instrumentationName).Float64Histogram(
		"http.client.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of outbound platform requests, tagged by metric name."),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	restyClient := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetRetryCount(0).
		SetLogger(restyLogger{}).
		SetHeader("Accept", "application/json")
	if config.UserAgent != "" {
		restyClient.SetHeader("User-Agent", config.UserAgent)
	}
	restyClient.SetHeaders(config.Headers)

	log.Debug().Str("base_url", config.BaseURL).Dur("timeout", config.Timeout).Msg("http client created")

	return &Client{
		resty:      restyClient,
		tracer:     config.TracerProvider.Tracer(instrumentationName),
		propagator: config.Propagator,
		duration:   duration,
	}, nil
}

// Close releases idle connections held by the client.
func (c *Client) Close() error {
	return c.resty.Close()
}

// restyLogger forwards resty's internal messages to zerolog.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...any) {
	log.Error().Str("component", "resty").Msgf(format, v...)
}

func (restyLogger) Warnf(format string, v ...any) {
	log.Warn().Str("component", "resty").Msgf(format, v...)
}

func (restyLogger) Debugf(format string, v ...any) {
	log.Debug().Str("component", "resty").Msgf(format, v...)
}
