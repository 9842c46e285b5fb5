package qkernel

import (
	"sync"

	"github.com/google/uuid"
)

// task is one contiguous index range of a kernel invocation, the unit of
// work a worker pulls from the queue. Every range of the same invocation
// shares the kernel ID and the join barrier.
type task struct {
	ID     uuid.UUID
	Op     string
	Lo, Hi int64
	Fn     func(lo, hi int64)
	done   *sync.WaitGroup
}
