package oteladapters

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

const (
	descriptionDuration = "catalog operation duration"
	descriptionCounter  = "catalog operation counter"
	descriptionValue    = "catalog observed value"
	unitSeconds         = "s"
)

// MetricsCollector implements catalog.ContextualMetricsCollector using the OpenTelemetry metrics API.
// Instruments are created on first use and cached by name:
//   - RecordDuration -> Float64Histogram in seconds
//   - IncrementCounter -> Int64Counter
//   - RecordValue -> Float64Gauge
//
// Instruments that cannot be created are skipped silently.
type MetricsCollector struct {
	meter      metric.Meter
	mu         sync.RWMutex
	histograms map[string]metric.Float64Histogram
	counters   map[string]metric.Int64Counter
	gauges     map[string]metric.Float64Gauge
}

// NewMetricsCollector creates a new OpenTelemetry metrics collector for the given meter.
func NewMetricsCollector(meter metric.Meter) *MetricsCollector {
	return &MetricsCollector{
		meter:      meter,
		histograms: make(map[string]metric.Float64Histogram),
		counters:   make(map[string]metric.Int64Counter),
		gauges:     make(map[string]metric.Float64Gauge),
	}
}

// RecordDuration implements catalog.MetricsCollector.
func (m *MetricsCollector) RecordDuration(metricName string, duration time.Duration, labels map[string]string) {
	m.RecordDurationContext(context.Background(), metricName, duration, labels)
}

// RecordDurationContext records the duration in seconds with context for exemplar correlation.
func (m *MetricsCollector) RecordDurationContext(ctx context.Context, metricName string, duration time.Duration, labels map[string]string) {
	histogram, ok := instrument(m, m.histograms, metricName, func() (metric.Float64Histogram, error) {
		return m.meter.Float64Histogram(metricName, metric.WithDescription(descriptionDuration), metric.WithUnit(unitSeconds))
	})
	if !ok {
		return
	}

	histogram.Record(ctx, duration.Seconds(), metric.WithAttributeSet(toAttributeSet(labels)))
}

// IncrementCounter implements catalog.MetricsCollector.
func (m *MetricsCollector) IncrementCounter(metricName string, labels map[string]string) {
	m.IncrementCounterContext(context.Background(), metricName, labels)
}

// IncrementCounterContext increments the counter by one with context for exemplar correlation.
func (m *MetricsCollector) IncrementCounterContext(ctx context.Context, metricName string, labels map[string]string) {
	counter, ok := instrument(m, m.counters, metricName, func() (metric.Int64Counter, error) {
		return m.meter.Int64Counter(metricName, metric.WithDescription(descriptionCounter))
	})
	if !ok {
		return
	}

	counter.Add(ctx, 1, metric.WithAttributeSet(toAttributeSet(labels)))
}

// RecordValue implements catalog.MetricsCollector.
func (m *MetricsCollector) RecordValue(metricName string, value float64, labels map[string]string) {
	m.RecordValueContext(context.Background(), metricName, value, labels)
}

// RecordValueContext records the gauge value with context for exemplar correlation.
func (m *MetricsCollector) RecordValueContext(ctx context.Context, metricName string, value float64, labels map[string]string) {
	gauge, ok := instrument(m, m.gauges, metricName, func() (metric.Float64Gauge, error) {
		return m.meter.Float64Gauge(metricName, metric.WithDescription(descriptionValue))
	})
	if !ok {
		return
	}

	gauge.Record(ctx, value, metric.WithAttributeSet(toAttributeSet(labels)))
}

// instrument returns the cached instrument for name or creates and caches it.
func instrument[T any](m *MetricsCollector, cache map[string]T, name string, create func() (T, error)) (T, bool) {
	m.mu.RLock()
	cached, exists := cache[name]
	m.mu.RUnlock()

	if exists {
		return cached, true
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if cached, exists = cache[name]; exists {
		return cached, true
	}

	created, err := create()
	if err != nil {
		var zero T
		return zero, false
	}

	cache[name] = created

	return created, true
}

func toAttributeSet(labels map[string]string) attribute.Set {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for key, value := range labels {
		attrs = append(attrs, attribute.String(key, value))
	}

	return attribute.NewSet(attrs...)
}

var _ catalog.ContextualMetricsCollector = (*MetricsCollector)(nil)
