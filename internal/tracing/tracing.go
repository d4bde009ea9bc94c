// Package tracing builds the tracing configuration attached to every outbound call.
package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Config adjusts how a single call is traced. The zero value traces the call
// as a child of whatever span the request context already carries.
type Config struct {
	// RequestSpanNameSuffix names the span and the metric of the call.
	// It is always set to the operation's metric by Create.
	RequestSpanNameSuffix string

	// Parent replaces the span found in the request context as the parent.
	Parent trace.SpanContext

	// Disabled skips span creation for this call.
	Disabled bool

	// DisablePropagation keeps trace headers off the outgoing request.
	DisablePropagation bool

	Attributes []attribute.KeyValue
}

// Create merges a caller override on top of the defaults for metric.
// The override can change sampling and propagation but never the metric name.
func Create(metric string, override *Config) Config {
	var config Config
	if override != nil {
		config = *override
		config.Attributes = append([]attribute.KeyValue(nil), override.Attributes...)
	}

	config.RequestSpanNameSuffix = metric
	return config
}

// Metric returns the metric name the configuration was created for.
func (c Config) Metric() string {
	return c.RequestSpanNameSuffix
}
