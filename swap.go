package qkernel

const opSwapPieces = "SwapPieces"

// SwapPieces exchanges amplitudes between the two halves of a state vector
// distributed over two pieces, in place. nqubits counts the qubits of the
// combined pair, so each piece holds 2^(nqubits-1) amplitudes; piece0 holds
// the half where the current global qubit reads 0 and piece1 the half where
// it reads 1. target is the local qubit (0-based among the non-global
// qubits, so target+2 <= nqubits) trading places with the global qubit.
//
// Exactly the amplitudes whose target bit disagrees with their piece move:
// piece0 entries with target bit 1 swap with piece1 entries with target bit
// 0, half of each piece. The untouched halves already sit on the right side.
// Each loop index touches one disjoint pair, so the ranges parallelize
// freely.
func SwapPieces[T Amplitude](p *Pool, piece0, piece1 []T, target, nqubits int) error {
	if err := p.Device().supported(opSwapPieces); err != nil {
		return err
	}
	if nqubits < 2 {
		return invalidArgumentf("need at least 2 qubits to swap pieces, got %d", nqubits)
	}
	if target < 0 || target >= nqubits-1 {
		return invalidArgumentf("target qubit %d out of range for %d qubits", target, nqubits)
	}
	npiece := 1 << (nqubits - 1)
	if len(piece0) != npiece || len(piece1) != npiece {
		return invalidArgumentf("piece lengths %d and %d do not match %d states", len(piece0), len(piece1), npiece)
	}

	// Position of the target bit inside a piece index, and the number of
	// pairs that cross the piece boundary (half of each piece).
	m := nqubits - target - 2
	tk := int64(1) << m
	nswaps := int64(1) << (nqubits - 2)

	p.parallelFor(opSwapPieces, nswaps, 1, func(lo, hi int64) {
		for g := lo; g < hi; g++ {
			i := ((g >> m) << (m + 1)) | (g & (tk - 1))
			piece0[i+tk], piece1[i] = piece1[i], piece0[i+tk]
		}
	})
	return nil
}
