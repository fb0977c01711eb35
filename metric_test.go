package emitter

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// counterValue sums all data points of an int64 counter
func counterValue(t *testing.T, reader sdkmetric.Reader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("metric %s: unexpected data %T", name, m.Data)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	em := New(WithMeterProvider(mp), WithRuntime(NewRuntime()))

	fn := func(any, Payload) {}
	em.On("x", fn, nil)
	em.On("x", fn, nil)
	em.Once("x", func(any, Payload) {}, nil)
	em.Emit(NewEvent("x", false))
	em.EmitWith("x", false)
	em.EmitWith("x", false)
	em.EmitWith("none", false)
	em.RemoveListener("x", fn, nil)

	tests := []struct {
		name string
		want int64
	}{
		{metricEmitted, 3},
		{metricListenerAdded, 2},
		{metricListenerRemoved, 2},
		{metricEventReused, 1},
	}
	for _, tt := range tests {
		if got := counterValue(t, reader, tt.name); got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestMetricsDisabled(t *testing.T) {
	if em := New(); em.metrics != nil {
		t.Error("expected metrics to be off by default")
	}
	if em := New(WithMetrics(true)); em.metrics == nil {
		t.Error("expected metrics with global provider")
	}
}
