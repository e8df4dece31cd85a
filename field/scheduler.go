package field

// Scheduler runs a callback on the next display frame
type Scheduler interface {
	RequestFrame(fn func())
}

// FrameQueue is a Scheduler driven by an explicit Tick per display refresh.
// Callbacks requested while a tick is running wait for the following tick.
// It is not safe for concurrent use; hosts tick it from their frame goroutine.
type FrameQueue struct {
	pending []func()
	spare   []func()
}

// NewFrameQueue creates an empty queue
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Tick
func (q *FrameQueue) RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// Tick runs the callbacks queued before this call and returns how many ran
func (q *FrameQueue) Tick() int {
	if len(q.pending) == 0 {
		return 0
	}
	run := q.pending
	q.pending = q.spare[:0]
	for i, fn := range run {
		fn()
		run[i] = nil
	}
	q.spare = run[:0]
	return len(run)
}

// Pending returns the number of callbacks waiting for the next Tick
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
