package qkernel

import "sort"

const opApplyGate = "ApplyGate"

// ApplyGate applies a 2x2 gate to the target qubit of a state vector of
// nqubits qubits, in place. Qubit 0 is the most significant bit of a basis
// index. Every control qubit must read 1 for the gate to act on a pair.
//
// The index walk mirrors the distributed kernel it replaces: the state is
// cut into blocks of tk = 2^(nqubits-target-1) starting at multiples of
// 2*tk, so every enumerated index has target bit 0. Indices with any
// control bit set are skipped; adding the summed control strides then moves
// the surviving indices onto the subspace where all controls are 1. Each
// (i1, i2) pair is touched by exactly one block, which makes the blocks the
// safe unit of parallelism.
func ApplyGate[T Amplitude](p *Pool, state []T, gate *Matrix2[T], nqubits, target int, controls []int) error {
	if err := p.Device().supported(opApplyGate); err != nil {
		return err
	}
	if gate == nil {
		return invalidArgumentf("gate matrix is nil")
	}
	if target < 0 || target >= nqubits {
		return invalidArgumentf("target qubit %d out of range for %d qubits", target, nqubits)
	}
	if len(state) != 1<<nqubits {
		return invalidArgumentf("state length %d does not match %d qubits", len(state), nqubits)
	}
	if err := validateControls(controls, nqubits, target); err != nil {
		return err
	}

	nstates := int64(1) << nqubits
	tk := int64(1) << (nqubits - target - 1)

	var ctot int64
	cks := make([]int64, 0, len(controls))
	for _, c := range controls {
		ck := int64(1) << (nqubits - c - 1)
		cks = append(cks, ck)
		ctot += ck
	}

	g00, g01, g10, g11 := gate[0], gate[1], gate[2], gate[3]

	p.parallelFor(opApplyGate, nstates, 2*tk, func(lo, hi int64) {
		for g := lo; g < hi; g += 2 * tk {
			for i := g; i < g+tk; i++ {
				apply := true
				for _, ck := range cks {
					if (i/ck)%2 == 1 {
						apply = false
						break
					}
				}
				if !apply {
					continue
				}
				i1 := i + ctot
				i2 := i1 + tk
				a, b := state[i1], state[i2]
				state[i1] = g00*a + g01*b
				state[i2] = g10*a + g11*b
			}
		}
	})
	return nil
}

// validateControls rejects out-of-range, duplicate, and target-colliding
// control qubits before any amplitude is written.
func validateControls(controls []int, nqubits, target int) error {
	if len(controls) == 0 {
		return nil
	}
	seen := make([]int, len(controls))
	copy(seen, controls)
	sort.Ints(seen)
	for i, c := range seen {
		if c < 0 || c >= nqubits {
			return invalidArgumentf("control qubit %d out of range for %d qubits", c, nqubits)
		}
		if c == target {
			return invalidArgumentf("control qubit %d equals target", c)
		}
		if i > 0 && c == seen[i-1] {
			return invalidArgumentf("duplicate control qubit %d", c)
		}
	}
	return nil
}
