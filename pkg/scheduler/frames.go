package scheduler

// FrameID identifies a pending frame request. The zero value never refers to
// a request.
type FrameID uint64

// FrameRequester is the host's "call me on the next refresh" primitive.
type FrameRequester interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a FrameRequester driven by the host loop: every RunFrame
// fires the callbacks requested before it was called. Callbacks requested
// while a frame runs wait for the next RunFrame. It is not safe for
// concurrent use.
type FrameQueue struct {
	last    FrameID
	pending []frameRequest
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue { return &FrameQueue{} }

// RequestFrame schedules fn for the next RunFrame.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.last++
	q.pending = append(q.pending, frameRequest{id: q.last, fn: fn})
	return q.last
}

// CancelFrame drops a pending request. Unknown or already fired ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, req := range q.pending {
		if req.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending reports how many callbacks are waiting for the next frame.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// RunFrame fires the current batch of callbacks in request order and returns
// how many ran.
func (q *FrameQueue) RunFrame() int {
	batch := q.pending
	q.pending = nil
	for _, req := range batch {
		req.fn()
	}
	return len(batch)
}
