package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func TestCreate_Defaults(t *testing.T) {
	config := Create("logistics-getDockById", nil)

	assert.Equal(t, "logistics-getDockById", config.RequestSpanNameSuffix)
	assert.Equal(t, "logistics-getDockById", config.Metric())
	assert.False(t, config.Disabled)
	assert.False(t, config.DisablePropagation)
	assert.False(t, config.Parent.IsValid())
	assert.Empty(t, config.Attributes)
}

func TestCreate_OverrideCannotRenameMetric(t *testing.T) {
	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01},
		SpanID:     trace.SpanID{0x02},
		TraceFlags: trace.FlagsSampled,
	})
	override := &Config{
		RequestSpanNameSuffix: "custom-name",
		Parent:                parent,
		DisablePropagation:    true,
		Attributes:            []attribute.KeyValue{attribute.String("caller", "checkout")},
	}

	config := Create("logistics-listPickupPoints", override)

	assert.Equal(t, "logistics-listPickupPoints", config.Metric())
	assert.Equal(t, parent, config.Parent)
	assert.True(t, config.DisablePropagation)
	assert.Equal(t, []attribute.KeyValue{attribute.String("caller", "checkout")}, config.Attributes)

	// the override itself is left untouched
	assert.Equal(t, "custom-name", override.RequestSpanNameSuffix)
}

func TestCreate_AttributesAreCopied(t *testing.T) {
	override := &Config{Attributes: []attribute.KeyValue{attribute.Int("n", 1)}}

	config := Create("oms-getOrder", override)
	config.Attributes[0] = attribute.Int("n", 2)

	assert.Equal(t, attribute.Int("n", 1), override.Attributes[0])
}
