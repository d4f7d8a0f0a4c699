package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrQueueFull is returned by Submit when the bounded queue has no room.
var ErrQueueFull = errors.New("task queue is full")

// RunnerConfig holds configuration for the task runner.
type RunnerConfig struct {
	// WorkerCount determines how many concurrent workers process tasks.
	WorkerCount int

	// QueueSize is the capacity of the in-memory task queue.
	QueueSize int

	// TaskTimeout bounds the execution of a single task. Zero means no
	// timeout.
	TaskTimeout time.Duration
}

// DefaultRunnerConfig returns a RunnerConfig with reasonable defaults.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		WorkerCount: 2,
		QueueSize:   100,
		TaskTimeout: 2 * time.Minute,
	}
}

// Runner manages the worker pool that executes background tasks.
type Runner struct {
	taskChan   chan Task
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	config     RunnerConfig
	logger     *slog.Logger

	mu      sync.Mutex
	started bool
	stopped bool
}

// NewRunner creates a Runner with the given configuration.
func NewRunner(config RunnerConfig, logger *slog.Logger) *Runner {
	if config.WorkerCount <= 0 {
		config.WorkerCount = DefaultRunnerConfig().WorkerCount
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultRunnerConfig().QueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Runner{
		taskChan:   make(chan Task, config.QueueSize),
		ctx:        ctx,
		cancelFunc: cancel,
		config:     config,
		logger:     logger.With(slog.String("component", "task_runner")),
	}
}

// Submit enqueues a task for processing. Returns ErrQueueFull when the queue
// has no room; the caller decides whether that is fatal.
func (r *Runner) Submit(task Task) error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return fmt.Errorf("task runner is stopped")
	}
	r.mu.Unlock()

	select {
	case r.taskChan <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the worker goroutines.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	r.started = true

	for i := 0; i < r.config.WorkerCount; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}
}

// Stop shuts the runner down and waits for in-flight tasks to finish.
// Queued but unstarted tasks are dropped.
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.mu.Unlock()

	r.cancelFunc()
	r.wg.Wait()
}

func (r *Runner) worker(id int) {
	defer r.wg.Done()

	for {
		select {
		case <-r.ctx.Done():
			return
		case t, ok := <-r.taskChan:
			if !ok {
				return
			}
			r.processTask(t, id)
		}
	}
}

func (r *Runner) processTask(t Task, workerID int) {
	logger := r.logger.With(
		"task_id", t.ID(),
		"task_type", t.Type(),
		"worker_id", workerID,
	)

	ctx := r.ctx
	if r.config.TaskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.TaskTimeout)
		defer cancel()
	}

	start := time.Now()
	if err := t.Execute(ctx); err != nil {
		logger.Error("task execution failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return
	}

	logger.Info("task completed",
		"duration_ms", time.Since(start).Milliseconds())
}
