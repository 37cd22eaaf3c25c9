package events

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var ErrQueueFull = errors.New("worker pool queue is full")

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	TryAddTask(task Task) error
	Close()
}

type Task func() error

type WorkerPool struct {
	pool chan Task
	wg   sync.WaitGroup
	once sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	return NewBufferedWorkerPool(size, size)
}

// NewBufferedWorkerPool runs workers goroutines over a queue holding up to queue tasks.
func NewBufferedWorkerPool(workers, queue int) *WorkerPool {
	if queue < 0 {
		queue = 0
	}
	wp := &WorkerPool{pool: make(chan Task, queue)}

	for i := 0; i < workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// TryAddTask never blocks: it returns ErrQueueFull when every worker is busy
// and the queue has no room left.
func (wp *WorkerPool) TryAddTask(task Task) error {
	select {
	case wp.pool <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.pool)
	})
	wp.wg.Wait()
}
