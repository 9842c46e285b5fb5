package qkernel

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const opTransposeState = "TransposeState"

// TransposeState gathers a state vector that is split into equal contiguous
// pieces into a single freshly allocated vector under a new qubit ordering.
// qubitOrder must be a permutation of 0..nqubits-1; the entry at position p
// names the original qubit occupying position p of the new ordering.
//
// For every output index g the source index is reassembled bit by bit:
// bit q of g contributes 2^(nqubits-qubitOrder[nqubits-q-1]-1). The gather
// is pure, so output ranges parallelize with no shared writes.
func TransposeState[T Amplitude](p *Pool, pieces [][]T, nqubits int, qubitOrder []int) ([]T, error) {
	if err := p.Device().supported(opTransposeState); err != nil {
		return nil, err
	}
	if nqubits < 0 {
		return nil, invalidArgumentf("negative qubit count %d", nqubits)
	}
	nstates := int64(1) << nqubits
	ndevices := len(pieces)
	if !isPowerOfTwo(ndevices) || int64(ndevices) > nstates {
		return nil, invalidArgumentf("piece count %d is not a power of two dividing %d states", ndevices, nstates)
	}
	npiece := nstates / int64(ndevices)
	for i, piece := range pieces {
		if int64(len(piece)) != npiece {
			return nil, invalidArgumentf("piece %d has length %d, want %d", i, len(piece), npiece)
		}
	}
	if err := validateQubitOrder(qubitOrder, nqubits); err != nil {
		return nil, err
	}

	start := time.Now()
	id := uuid.New()

	exponents := make([]int64, nqubits)
	for q := 0; q < nqubits; q++ {
		exponents[q] = int64(1) << (nqubits - qubitOrder[nqubits-q-1] - 1)
	}

	output := make([]T, nstates)
	gather := func(lo, hi int64) {
		for g := lo; g < hi; g++ {
			var k int64
			for q, exp := range exponents {
				if (g>>q)&1 == 1 {
					k += exp
				}
			}
			output[g] = pieces[k/npiece][k%npiece]
		}
	}

	if nstates <= p.config.ParallelThreshold || p.Workers() < 2 {
		gather(0, nstates)
	} else {
		var eg errgroup.Group
		eg.SetLimit(p.Workers())
		chunk := (nstates + int64(p.Workers()) - 1) / int64(p.Workers())
		for lo := int64(0); lo < nstates; lo += chunk {
			lo, hi := lo, lo+chunk
			if hi > nstates {
				hi = nstates
			}
			eg.Go(func() error {
				gather(lo, hi)
				return nil
			})
		}
		// Gather goroutines cannot fail; Wait is only the join barrier.
		_ = eg.Wait()
	}

	p.metrics.recordKernel(opTransposeState, id, start)
	return output, nil
}

// validateQubitOrder checks that order is a permutation of 0..nqubits-1.
func validateQubitOrder(order []int, nqubits int) error {
	if len(order) != nqubits {
		return invalidArgumentf("qubit order has length %d, want %d", len(order), nqubits)
	}
	seen := make([]bool, nqubits)
	for _, q := range order {
		if q < 0 || q >= nqubits {
			return invalidArgumentf("qubit order entry %d out of range for %d qubits", q, nqubits)
		}
		if seen[q] {
			return invalidArgumentf("qubit order repeats qubit %d", q)
		}
		seen[q] = true
	}
	return nil
}
