package qkernel

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Metrics tracks what a synchronous kernel pool can observe: how many
// kernels ran, how long they took, and how many worker tasks they fanned
// out into. All fields are guarded by the mutex; read through the accessors.
type Metrics struct {
	mu sync.RWMutex

	kernelCount   int64
	taskCount     int64
	totalTime     time.Duration
	lastKernelID  uuid.UUID
	opCounts      map[string]int64
	opTotalTime   map[string]time.Duration
	taskTotalTime time.Duration
}

func newMetrics() *Metrics {
	return &Metrics{
		opCounts:    make(map[string]int64),
		opTotalTime: make(map[string]time.Duration),
	}
}

// recordKernel is called once per kernel invocation, after its join barrier.
func (m *Metrics) recordKernel(op string, id uuid.UUID, start time.Time) {
	duration := time.Since(start)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.kernelCount++
	m.totalTime += duration
	m.lastKernelID = id
	m.opCounts[op]++
	m.opTotalTime[op] += duration
}

// recordTask is called by workers once per executed range.
func (m *Metrics) recordTask(t task, start time.Time) {
	duration := time.Since(start)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.taskCount++
	m.taskTotalTime += duration
}

// KernelCount returns the number of kernel invocations executed so far.
func (m *Metrics) KernelCount() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.kernelCount
}

// TaskCount returns the number of worker ranges executed so far.
func (m *Metrics) TaskCount() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.taskCount
}

// OpCount returns the number of invocations of the named operator.
func (m *Metrics) OpCount(op string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.opCounts[op]
}

// AverageKernelLatency returns the mean wall time per kernel invocation.
func (m *Metrics) AverageKernelLatency() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.kernelCount == 0 {
		return 0
	}
	return m.totalTime / time.Duration(m.kernelCount)
}

// LastKernelID returns the identifier of the most recent kernel invocation.
func (m *Metrics) LastKernelID() uuid.UUID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastKernelID
}
