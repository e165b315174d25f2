package dispatch

import (
	"sync"
)

// Queue is a FIFO task queue served by one worker goroutine. Do never blocks,
// so a running task may post further tasks.
type Queue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	tasks   []func()
	closed  bool
	stopped chan struct{}
}

// NewQueue starts the worker and returns the queue
func NewQueue() *Queue {
	q := &Queue{
		stopped: make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

// Do appends fn to the queue. Tasks posted after Close are dropped.
func (q *Queue) Do(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.tasks = append(q.tasks, fn)
	q.cond.Signal()
}

// Flush blocks until every task posted before the call has run. It must not be
// called from a task.
func (q *Queue) Flush() {
	done := make(chan struct{})
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.stopped
		return
	}
	q.tasks = append(q.tasks, func() { close(done) })
	q.cond.Signal()
	q.mu.Unlock()

	<-done
}

// Close stops accepting tasks, runs what is already queued and stops the worker
func (q *Queue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		q.cond.Signal()
	}
	q.mu.Unlock()

	<-q.stopped
}

func (q *Queue) run() {
	defer close(q.stopped)

	for {
		q.mu.Lock()
		for len(q.tasks) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.tasks) == 0 && q.closed {
			q.mu.Unlock()
			return
		}
		task := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		task()
	}
}
