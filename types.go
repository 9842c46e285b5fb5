package qkernel

// Amplitude constrains the supported state-vector precisions. The same
// kernels serve both single and double precision; callers pick one when
// they allocate the state.
type Amplitude interface {
	~complex64 | ~complex128
}

// Matrix2 is a 2x2 gate matrix stored row-major: [g00, g01, g10, g11].
// It acts on the {|0>, |1>} subspace of a single target qubit.
type Matrix2[T Amplitude] [4]T

// isPowerOfTwo reports whether v is a positive power of two.
func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
