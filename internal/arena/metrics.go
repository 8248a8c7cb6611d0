package arena

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/queuecommander/arena/internal/arena"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type metrics struct {
	enqueued   metric.Int64Counter
	deployed   metric.Int64Counter
	emptyQueue metric.Int64Counter
	queueSize  metric.Int64ObservableGauge
}

// newMetrics registers the arena instruments on the global meter provider
// (no-op if not configured).
func newMetrics(a *Arena) (*metrics, error) {
	m := meter()
	out := &metrics{}

	var err error
	out.enqueued, err = m.Int64Counter(
		"arena.enqueued",
		metric.WithDescription("Total units added to the queue"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating enqueued counter: %w", err)
	}

	out.deployed, err = m.Int64Counter(
		"arena.deployed",
		metric.WithDescription("Total units deployed from the front of the queue"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating deployed counter: %w", err)
	}

	out.emptyQueue, err = m.Int64Counter(
		"arena.empty_queue",
		metric.WithDescription("Deploy attempts rejected because the queue was empty"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating empty queue counter: %w", err)
	}

	out.queueSize, err = m.Int64ObservableGauge(
		"arena.queue.size",
		metric.WithDescription("Units currently waiting in the queue"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating queue size gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(out.queueSize, int64(a.Size()))
			return nil
		},
		out.queueSize,
	)
	if err != nil {
		return nil, fmt.Errorf("registering queue size callback: %w", err)
	}

	return out, nil
}

func (m *metrics) recordEnqueue(unitName string) {
	m.enqueued.Add(context.Background(), 1, metric.WithAttributes(attribute.String("unit", unitName)))
}

func (m *metrics) recordDeploy(unitName string) {
	m.deployed.Add(context.Background(), 1, metric.WithAttributes(attribute.String("unit", unitName)))
}

func (m *metrics) recordEmptyQueue() {
	m.emptyQueue.Add(context.Background(), 1)
}
