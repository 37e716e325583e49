package overlay

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/overlay/internal/ring"
)

// QueueCapacity is the capacity of the process-wide queue.
const QueueCapacity = 1024 * 10

// Queue is a bounded multi-producer command queue. TryPush never blocks:
// when the queue is full the oldest command is evicted.
type Queue struct {
	ring *ring.Ring[Command]

	pushed  atomic.Uint64
	evicted atomic.Uint64
	// quiet is set after a successful drain to empty; the next eviction
	// after that is logged.
	quiet atomic.Bool
}

// QueueStats holds diagnostic counters of a Queue.
type QueueStats struct {
	Pushed  uint64
	Evicted uint64
	Len     int
}

// NewQueue creates a queue holding at most capacity commands.
// Panics if capacity is not positive.
func NewQueue(capacity int) *Queue {
	q := &Queue{ring: ring.New[Command](capacity)}
	q.quiet.Store(true)
	return q
}

var defaultQueue = sync.OnceValue(func() *Queue {
	return NewQueue(QueueCapacity)
})

// DefaultQueue returns the process-wide queue shared by the interceptors
// and the renderer. It is created on first use and never released.
func DefaultQueue() *Queue {
	return defaultQueue()
}

// TryPush enqueues cmd. It never blocks and never fails; under saturation
// the oldest queued command is dropped. A nil cmd is ignored.
func (q *Queue) TryPush(cmd Command) {
	if cmd == nil {
		return
	}
	q.pushed.Add(1)
	old, evicted := q.ring.ForcePush(cmd)
	if !evicted {
		return
	}
	n := q.evicted.Add(1)
	if q.quiet.CompareAndSwap(true, false) {
		Logger().Warn("overlay: command queue saturated, evicting oldest",
			"evicted", old.Type(), "total_evicted", n, "capacity", q.ring.Cap())
	}
}

// TryPop removes the oldest command. It reports false when the queue is
// empty. Only one goroutine should pop at a time.
func (q *Queue) TryPop() (Command, bool) {
	cmd, ok := q.ring.Pop()
	if !ok {
		q.quiet.Store(true)
	}
	return cmd, ok
}

// Len returns the number of queued commands. The value may be stale under
// concurrent use.
func (q *Queue) Len() int {
	return q.ring.Len()
}

// Cap returns the capacity of the queue.
func (q *Queue) Cap() int {
	return q.ring.Cap()
}

// Stats returns a snapshot of the queue counters.
func (q *Queue) Stats() QueueStats {
	return QueueStats{
		Pushed:  q.pushed.Load(),
		Evicted: q.evicted.Load(),
		Len:     q.ring.Len(),
	}
}
