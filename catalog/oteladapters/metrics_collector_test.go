package oteladapters_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog/oteladapters"
)

func newCollectorWithReader() (*oteladapters.MetricsCollector, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return oteladapters.NewMetricsCollector(provider.Meter("catalog-test")), reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	return resourceMetrics
}

func findMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Metrics {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if m.Name == name {
				return m
			}
		}
	}

	t.Fatalf("metric %s not found", name)

	return metricdata.Metrics{}
}

func Test_MetricsCollector_RecordDuration_RecordsSecondsInHistogram(t *testing.T) {
	// arrange
	collector, reader := newCollectorWithReader()
	labels := map[string]string{"operation": "get_by_id", "status": "success"}

	// act
	collector.RecordDuration("catalog_repository_operation_duration_seconds", 150*time.Millisecond, labels)

	// assert
	m := findMetric(t, collect(t, reader), "catalog_repository_operation_duration_seconds")
	assert.Equal(t, "s", m.Unit)

	histogram, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, histogram.DataPoints, 1)
	assert.Equal(t, uint64(1), histogram.DataPoints[0].Count)
	assert.InDelta(t, 0.15, histogram.DataPoints[0].Sum, 0.001)

	expectedAttrs := attribute.NewSet(
		attribute.String("operation", "get_by_id"),
		attribute.String("status", "success"),
	)
	assert.True(t, histogram.DataPoints[0].Attributes.Equals(&expectedAttrs))
}

func Test_MetricsCollector_IncrementCounterContext_SumsPerLabelSet(t *testing.T) {
	// arrange
	collector, reader := newCollectorWithReader()
	ctx := context.Background()
	success := map[string]string{"command_type": "DeleteAuthor", "status": "success"}
	notFound := map[string]string{"command_type": "DeleteAuthor", "status": "not_found"}

	// act
	collector.IncrementCounterContext(ctx, "commandhandler_handle_calls_total", success)
	collector.IncrementCounterContext(ctx, "commandhandler_handle_calls_total", success)
	collector.IncrementCounter("commandhandler_handle_calls_total", notFound)

	// assert
	m := findMetric(t, collect(t, reader), "commandhandler_handle_calls_total")
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 2)

	values := make(map[string]int64)
	for _, dataPoint := range sum.DataPoints {
		status, _ := dataPoint.Attributes.Value("status")
		values[status.AsString()] = dataPoint.Value
	}

	assert.Equal(t, int64(2), values["success"])
	assert.Equal(t, int64(1), values["not_found"])
}

func Test_MetricsCollector_RecordValue_KeepsLastValue(t *testing.T) {
	// arrange
	collector, reader := newCollectorWithReader()
	labels := map[string]string{"operation": "get_all"}

	// act
	collector.RecordValue("catalog_repository_rows", 3, labels)
	collector.RecordValueContext(context.Background(), "catalog_repository_rows", 5, labels)

	// assert
	m := findMetric(t, collect(t, reader), "catalog_repository_rows")
	gauge, ok := m.Data.(metricdata.Gauge[float64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 5.0, gauge.DataPoints[0].Value, 0.0001)
}

func Test_MetricsCollector_ConcurrentUse(t *testing.T) {
	// arrange
	collector, reader := newCollectorWithReader()
	labels := map[string]string{"status": "success"}

	var wg sync.WaitGroup

	// act
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			collector.IncrementCounter("queryhandler_handle_calls_total", labels)
			collector.RecordDuration("queryhandler_handle_duration_seconds", time.Millisecond, labels)
		}()
	}
	wg.Wait()

	// assert
	m := findMetric(t, collect(t, reader), "queryhandler_handle_calls_total")
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(20), sum.DataPoints[0].Value)
}
