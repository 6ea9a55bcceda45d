package observe

import (
	"context"
	"fmt"

	"github.com/on-the-ground/weakmemo/pure"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names recorded by Metrics.
const (
	MetricHits      = "memo.calls.hits"
	MetricMisses    = "memo.calls.misses"
	MetricErrors    = "memo.calls.errors"
	MetricClears    = "memo.clears"
	MetricReclaimed = "memo.entries.reclaimed"
)

// Metrics is a pure.Observer backed by OpenTelemetry counters.
type Metrics struct {
	hits      metric.Int64Counter
	misses    metric.Int64Counter
	errors    metric.Int64Counter
	clears    metric.Int64Counter
	reclaimed metric.Int64Counter
	attrs     metric.MeasurementOption
}

var _ pure.Observer = (*Metrics)(nil)

// NewMetrics creates the counters on meter. Every measurement carries the
// attribute memo.name=name.
func NewMetrics(meter metric.Meter, name string) (*Metrics, error) {
	m := &Metrics{
		attrs: metric.WithAttributes(attribute.String("memo.name", name)),
	}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
		unit string
	}{
		{&m.hits, MetricHits, "Calls answered from the cache", "{call}"},
		{&m.misses, MetricMisses, "Calls that invoked the wrapped function", "{call}"},
		{&m.errors, MetricErrors, "Calls whose wrapped function returned an error", "{error}"},
		{&m.clears, MetricClears, "Cache clears", "{clear}"},
		{&m.reclaimed, MetricReclaimed, "Entries dropped after their key object was collected", "{entry}"},
	}
	for _, c := range counters {
		counter, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("create counter %s: %w", c.name, err)
		}
		*c.dst = counter
	}
	return m, nil
}

func (m *Metrics) Hit(int) {
	m.hits.Add(context.Background(), 1, m.attrs)
}

func (m *Metrics) Miss(int) {
	m.misses.Add(context.Background(), 1, m.attrs)
}

func (m *Metrics) Error(error) {
	m.errors.Add(context.Background(), 1, m.attrs)
}

func (m *Metrics) Cleared(uint64) {
	m.clears.Add(context.Background(), 1, m.attrs)
}

func (m *Metrics) Reclaimed(n int) {
	m.reclaimed.Add(context.Background(), int64(n), m.attrs)
}
