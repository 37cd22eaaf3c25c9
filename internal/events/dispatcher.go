package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRetries      = 3
	retryInterval   = time.Millisecond * 200
	deliveryTimeout = time.Second * 5
	closeTimeout    = time.Second * 10
	queuePerWorker  = 256
)

type Sink interface {
	Name() string
	Deliver(ctx context.Context, event Event) error
}

// Dispatcher fans every published event out to all sinks on a worker pool.
// Publish never blocks: when the queue is full the event is dropped and logged.
type Dispatcher struct {
	sinks           []Sink
	workerPool      WorkerPoolI
	retryInterval   time.Duration
	deliveryTimeout time.Duration
	closeTimeout    time.Duration

	mu      sync.RWMutex
	ctx     context.Context
	stopped bool
}

func NewDispatcher(workers int, sinks ...Sink) *Dispatcher {
	return &Dispatcher{
		sinks:           sinks,
		workerPool:      NewBufferedWorkerPool(workers, workers*queuePerWorker),
		retryInterval:   retryInterval,
		deliveryTimeout: deliveryTimeout,
		closeTimeout:    closeTimeout,
		ctx:             context.Background(),
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	d.ctx = ctx
	d.mu.Unlock()
	zap.L().Info("Event dispatcher started", zap.Int("sinks", len(d.sinks)))
}

func (d *Dispatcher) Publish(_ context.Context, event Event) {
	// the caller's context usually ends with its request, delivery outlives it.
	// TryAddTask does not block, so the read lock is never held while waiting.
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		zap.L().Warn("Dispatcher stopped, dropping event", zap.String("type", string(event.Type)), zap.String("id", event.ID))
		return
	}

	ctx := d.ctx
	err := d.workerPool.TryAddTask(func() error {
		return d.deliver(ctx, event)
	})
	if err != nil {
		zap.L().Error("Failed to enqueue event, dropping it",
			zap.String("type", string(event.Type)),
			zap.String("id", event.ID),
			zap.Error(err),
		)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event Event) error {
	var g errgroup.Group
	for _, sink := range d.sinks {
		sink := sink
		g.Go(func() error {
			return d.deliverWithRetry(ctx, sink, event)
		})
	}
	return g.Wait()
}

func (d *Dispatcher) deliverWithRetry(ctx context.Context, sink Sink, event Event) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = d.attempt(ctx, sink, event); err == nil {
			return nil
		}
		zap.L().Warn("Event delivery failed",
			zap.String("sink", sink.Name()),
			zap.String("type", string(event.Type)),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.retryInterval * time.Duration(attempt)):
		}
	}
	return fmt.Errorf("sink %s failed to deliver event %s after %d retries: %w", sink.Name(), event.ID, maxRetries, err)
}

func (d *Dispatcher) attempt(ctx context.Context, sink Sink, event Event) error {
	ctx, cancel := context.WithTimeout(ctx, d.deliveryTimeout)
	defer cancel()
	return sink.Deliver(ctx, event)
}

// Close drains queued events for at most closeTimeout. Publish after Close drops the event.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.workerPool.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(d.closeTimeout):
		zap.L().Warn("Event dispatcher closed with deliveries still in flight", zap.Duration("timeout", d.closeTimeout))
	}
}
