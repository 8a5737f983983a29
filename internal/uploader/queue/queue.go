// Package queue implements a bounded-parallelism task runner: up to limit
// tasks run simultaneously, the rest wait in a FIFO backlog.
package queue

import "sync"

// Queue runs submitted tasks with bounded parallelism. Tasks are started in
// submission order but may complete out of order. A task's failure is its
// own business; the queue itself never blocks on it.
type Queue struct {
	mu      sync.Mutex
	backlog []func()
	running int
	limit   int
	wg      sync.WaitGroup
}

// New creates a Queue running at most limit tasks at once.
func New(limit int) *Queue {
	if limit < 1 {
		limit = 1
	}
	return &Queue{limit: limit}
}

// Submit enqueues a task. It starts immediately when a slot is free,
// otherwise as soon as a running task finishes.
func (q *Queue) Submit(task func()) {
	q.wg.Add(1)

	q.mu.Lock()
	q.backlog = append(q.backlog, task)
	q.next()
	q.mu.Unlock()
}

// next starts the head of the backlog if a slot is free. Callers must hold
// q.mu.
func (q *Queue) next() {
	if q.running >= q.limit || len(q.backlog) == 0 {
		return
	}

	task := q.backlog[0]
	q.backlog = q.backlog[1:]
	q.running++

	go func() {
		defer q.done()
		task()
	}()
}

func (q *Queue) done() {
	q.mu.Lock()
	q.running--
	q.next()
	q.mu.Unlock()

	q.wg.Done()
}

// Wait blocks until every submitted task has finished.
func (q *Queue) Wait() {
	q.wg.Wait()
}
