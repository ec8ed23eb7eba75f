// Package webhook delivers bus events to registered sinks. Deliveries are
// simulated: sinks are in-process callbacks, not HTTP endpoints.
package webhook

import (
	"context"
	"sync"

	"github.com/cenkalti/backoff/v4"

	"github.com/Rohannaa2m12/hackapp/internal/eventbus"
	"github.com/Rohannaa2m12/hackapp/pkg/logger"
	"github.com/Rohannaa2m12/hackapp/pkg/metrics"
)

// Default dispatcher configuration constants.
const (
	defaultWorkers    = 2
	defaultMaxRetries = 3
)

// Sink receives domain events. A sink returning an error is retried with
// exponential backoff before the delivery is abandoned.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, e eventbus.Event) error
}

// Source is the event feed the dispatcher drains, usually *eventbus.Bus.
type Source interface {
	Events() <-chan eventbus.Event
}

// Option applies a configuration option to the Dispatcher.
type Option func(*Dispatcher)

// WithWorkers sets the number of delivery goroutines.
func WithWorkers(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.workers = n
		}
	}
}

// WithMaxRetries caps retry attempts per delivery.
func WithMaxRetries(n uint64) Option {
	return func(d *Dispatcher) {
		d.maxRetries = n
	}
}

// WithLogger sets a custom logger for the dispatcher.
func WithLogger(l logger.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// Dispatcher fans bus events out to every sink from a small worker pool.
type Dispatcher struct {
	source     Source
	sinks      []Sink
	workers    int
	maxRetries uint64
	logger     logger.Logger
	wg         sync.WaitGroup
}

// NewDispatcher creates a dispatcher with configuration options.
func NewDispatcher(source Source, sinks []Sink, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		source:     source,
		sinks:      sinks,
		workers:    defaultWorkers,
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logger.Get().Named("webhook")
	}
	return d
}

// Start launches the delivery workers. They exit when ctx is canceled or
// the source channel closes.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.run(ctx)
		}()
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	events := d.source.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			d.deliver(ctx, e)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, e eventbus.Event) {
	for _, sink := range d.sinks {
		attempts := 0
		op := func() error {
			attempts++
			if attempts > 1 {
				metrics.RecordWebhookRetry()
			}
			return sink.Deliver(ctx, e)
		}
		policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), d.maxRetries), ctx)
		if err := backoff.Retry(op, policy); err != nil {
			metrics.RecordWebhookFailure()
			d.logger.Warn(ctx, "webhook delivery abandoned",
				logger.String("sink", sink.Name()),
				logger.String("event", e.ID),
				logger.String("kind", string(e.Kind)),
				logger.Error(err),
			)
			continue
		}
		metrics.RecordWebhookDelivered()
	}
	metrics.UpdateBusDepth(len(d.source.Events()))
}

// Stop waits for all in-flight deliveries to finish. Close the source
// first so the workers drain and exit.
func (d *Dispatcher) Stop() {
	d.wg.Wait()
}

// LogSink is a simulated webhook endpoint that records deliveries in the
// application log.
type LogSink struct {
	name   string
	logger logger.Logger
}

// NewLogSink creates a log-backed sink.
func NewLogSink(name string, l logger.Logger) *LogSink {
	return &LogSink{name: name, logger: l}
}

func (s *LogSink) Name() string { return s.name }

func (s *LogSink) Deliver(ctx context.Context, e eventbus.Event) error {
	s.logger.Info(ctx, "webhook delivered",
		logger.String("sink", s.name),
		logger.String("event", e.ID),
		logger.String("kind", string(e.Kind)),
		logger.String("user", e.User),
		logger.Int64("gadget_id", e.GadgetID),
	)
	return nil
}
