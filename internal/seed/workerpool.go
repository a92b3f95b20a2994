package seed

import (
	"context"
	"sync"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool runs tasks on a fixed number of goroutines. Task errors are passed to
// onError, the pool itself never stops on them.
type WorkerPool struct {
	pool    chan Task
	wg      sync.WaitGroup
	once    sync.Once
	onError func(error)
}

func NewWorkerPool(size int, onError func(error)) *WorkerPool {
	if size < 1 {
		size = 1
	}
	if onError == nil {
		onError = func(error) {}
	}
	wp := &WorkerPool{pool: make(chan Task, size), onError: onError}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.pool {
		if err := task(); err != nil {
			wp.onError(err)
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

// Close stops accepting tasks and waits for the queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.pool)
	})
	wp.wg.Wait()
}
