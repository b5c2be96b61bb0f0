package renderer

import (
	"fmt"
	"runtime"
	"sync"
)

// WorkerState describes what a pool worker is doing
type WorkerState int

const (
	WorkerIdle WorkerState = iota
	WorkerExecuting
	WorkerTerminated
)

func (s WorkerState) String() string {
	switch s {
	case WorkerIdle:
		return "idle"
	case WorkerExecuting:
		return "executing"
	case WorkerTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("WorkerState(%d)", int(s))
	}
}

// WorkerPool runs queued tasks on a fixed set of goroutines.
//
// Tasks are taken in FIFO order. activeCount counts tasks that were enqueued
// but have not finished; WaitUntilDone blocks until it reaches zero. A single
// mutex guards the queue, the counter, the stop flag and the worker states.
type WorkerPool struct {
	mu            sync.Mutex
	taskAvailable *sync.Cond // signalled when a task is queued or the pool stops
	allDone       *sync.Cond // broadcast when activeCount drops to zero

	tasks       []func()
	activeCount int
	stopped     bool
	states      []WorkerState
	firstErr    error

	onTaskDone func(remaining int)
	wg         sync.WaitGroup
}

// NewWorkerPool starts numWorkers workers (runtime.NumCPU() when numWorkers <= 0).
// onTaskDone, if not nil, is called by a worker after each task with the number
// of tasks still outstanding. It runs outside the pool lock, concurrently with
// other workers, and may still be running when WaitUntilDone returns.
func NewWorkerPool(numWorkers int, onTaskDone func(remaining int)) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		states:     make([]WorkerState, numWorkers),
		onTaskDone: onTaskDone,
	}
	wp.taskAvailable = sync.NewCond(&wp.mu)
	wp.allDone = sync.NewCond(&wp.mu)

	wp.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go wp.run(i)
	}

	return wp
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return len(wp.states)
}

// Enqueue adds a task to the queue. Enqueueing after Shutdown is a programming
// error and panics.
func (wp *WorkerPool) Enqueue(task func()) {
	wp.mu.Lock()
	if wp.stopped {
		wp.mu.Unlock()
		panic("renderer: Enqueue called on a WorkerPool after Shutdown")
	}
	wp.tasks = append(wp.tasks, task)
	wp.activeCount++
	wp.mu.Unlock()

	wp.taskAvailable.Signal()
}

// WaitUntilDone blocks until every enqueued task has finished
func (wp *WorkerPool) WaitUntilDone() {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	for wp.activeCount > 0 {
		wp.allDone.Wait()
	}
}

// Shutdown lets the workers drain the queue, then stops and joins them.
// It is safe to call more than once.
func (wp *WorkerPool) Shutdown() {
	wp.mu.Lock()
	wp.stopped = true
	wp.mu.Unlock()

	wp.taskAvailable.Broadcast()
	wp.wg.Wait()
}

// Err returns the first task panic recovered by the pool, if any
func (wp *WorkerPool) Err() error {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	return wp.firstErr
}

// WorkerStates returns a snapshot of every worker's state
func (wp *WorkerPool) WorkerStates() []WorkerState {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	states := make([]WorkerState, len(wp.states))
	copy(states, wp.states)
	return states
}

// run is the main worker loop
func (wp *WorkerPool) run(id int) {
	defer wp.wg.Done()

	for {
		wp.mu.Lock()
		for len(wp.tasks) == 0 && !wp.stopped {
			wp.taskAvailable.Wait()
		}

		// Stopped and drained
		if len(wp.tasks) == 0 {
			wp.states[id] = WorkerTerminated
			wp.mu.Unlock()
			return
		}

		task := wp.tasks[0]
		wp.tasks[0] = nil
		wp.tasks = wp.tasks[1:]
		wp.states[id] = WorkerExecuting
		wp.mu.Unlock()

		err := runTask(task)

		wp.mu.Lock()
		if err != nil && wp.firstErr == nil {
			wp.firstErr = err
		}
		wp.activeCount--
		remaining := wp.activeCount
		wp.states[id] = WorkerIdle
		if remaining == 0 {
			wp.allDone.Broadcast()
		}
		wp.mu.Unlock()

		if wp.onTaskDone != nil {
			wp.onTaskDone(remaining)
		}
	}
}

// runTask runs task and converts a panic into an error so the task still counts as done
func runTask(task func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	task()
	return nil
}
