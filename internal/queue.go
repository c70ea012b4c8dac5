package internal

import "slices"

// Queue is a batching scheduler: pass Enqueue as an effect's scheduler and
// wrap writes in Batch to coalesce re-runs.
type Queue struct {
	// each nested batch increases the depth by 1
	// if depth > 0, effects are queued until the outermost batch is complete
	depth int

	pending []*Effect
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) IsBatching() bool {
	return q.depth > 0
}

// Enqueue runs e immediately outside a batch, else queues it once.
func (q *Queue) Enqueue(e *Effect) {
	if q.depth == 0 {
		e.Run()
		return
	}

	if !slices.Contains(q.pending, e) {
		q.pending = append(q.pending, e)
	}
}

func (q *Queue) Batch(fn func()) {
	q.depth++
	defer func() {
		q.depth--
		if q.depth == 0 {
			q.Flush()
		}
	}()

	fn()
}

// Flush runs every queued effect in enqueue order.
func (q *Queue) Flush() {
	effects := q.pending
	q.pending = nil

	for _, e := range effects {
		if !e.Disposed() {
			e.Run()
		}
	}
}

func (q *Queue) Pending() int {
	return len(q.pending)
}
