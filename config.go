package qkernel

import "runtime"

// Config holds the capacity knobs for a kernel pool. The worker count is a
// plain degree-of-parallelism setting owned by the caller's execution
// context, not ambient process state.
type Config struct {
	// Workers is the number of worker goroutines executing kernel blocks.
	Workers int

	// ParallelThreshold is the minimum number of basis states before a
	// kernel fans out to the workers. Below it the synchronization cost
	// outweighs the gain and the kernel runs on the calling goroutine.
	ParallelThreshold int64

	// Device selects the execution target. Only DeviceCPU is implemented.
	Device Device
}

func NewConfig() *Config {
	return &Config{
		Workers:           runtime.NumCPU(),
		ParallelThreshold: 1 << 12,
		Device:            DeviceCPU,
	}
}

// Option is a function type for configuring a pool.
type Option func(*Config)

// WithWorkers sets the worker goroutine count.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithParallelThreshold sets the state size below which kernels run inline.
func WithParallelThreshold(n int64) Option {
	return func(c *Config) {
		c.ParallelThreshold = n
	}
}

// WithDevice sets the execution target.
func WithDevice(d Device) Option {
	return func(c *Config) {
		c.Device = d
	}
}
