package qkernel

import "math"

// Helpers around the flat state-vector representation. Qubit 0 is the most
// significant bit of a basis index, so qubit q carries the stride
// 2^(nqubits-q-1).

// NewState allocates the |0...0> state of nqubits qubits.
func NewState[T Amplitude](nqubits int) []T {
	state := make([]T, 1<<nqubits)
	state[0] = 1
	return state
}

// Norm returns the L2 norm of a state vector.
func Norm[T Amplitude](state []T) float64 {
	var sum float64
	for _, a := range state {
		v := complex128(a)
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(sum)
}

// QubitProbability holds the measurement probabilities of one qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// QubitProbabilities marginalizes the state vector into per-qubit
// measurement probabilities. Normalization is the caller's business; the
// probabilities sum to the squared norm.
func QubitProbabilities[T Amplitude](state []T, nqubits int) ([]QubitProbability, error) {
	if len(state) != 1<<nqubits {
		return nil, invalidArgumentf("state length %d does not match %d qubits", len(state), nqubits)
	}
	probs := make([]QubitProbability, nqubits)
	for i, a := range state {
		v := complex128(a)
		prob := real(v)*real(v) + imag(v)*imag(v)
		for q := 0; q < nqubits; q++ {
			if i&(1<<(nqubits-q-1)) != 0 {
				probs[q].Prob1 += prob
			} else {
				probs[q].Prob0 += prob
			}
		}
	}
	return probs, nil
}

// SplitState copies a full state vector into ndevices equal contiguous
// pieces, piece index matching the value of the log2(ndevices) most
// significant qubits.
func SplitState[T Amplitude](state []T, ndevices int) ([][]T, error) {
	if !isPowerOfTwo(len(state)) {
		return nil, invalidArgumentf("state length %d is not a power of two", len(state))
	}
	if !isPowerOfTwo(ndevices) || ndevices > len(state) {
		return nil, invalidArgumentf("piece count %d is not a power of two dividing %d states", ndevices, len(state))
	}
	npiece := len(state) / ndevices
	pieces := make([][]T, ndevices)
	for i := range pieces {
		pieces[i] = make([]T, npiece)
		copy(pieces[i], state[i*npiece:(i+1)*npiece])
	}
	return pieces, nil
}

// MergeState reassembles pieces into a full contiguous state vector. A nil
// qubitOrder means the pieces are already in order and are concatenated;
// otherwise the merge transposes into the given ordering.
func MergeState[T Amplitude](p *Pool, pieces [][]T, nqubits int, qubitOrder []int) ([]T, error) {
	if qubitOrder == nil {
		qubitOrder = make([]int, nqubits)
		for q := range qubitOrder {
			qubitOrder[q] = q
		}
	}
	return TransposeState(p, pieces, nqubits, qubitOrder)
}
