package qkernel

import (
	"math"
	"math/cmplx"
)

// Constructors for the common single-qubit gate matrices, ready to feed to
// ApplyGate. Parameterized rotations take their angle in radians.

func GateI[T Amplitude]() *Matrix2[T] {
	return &Matrix2[T]{1, 0, 0, 1}
}

func GateX[T Amplitude]() *Matrix2[T] {
	return &Matrix2[T]{0, 1, 1, 0}
}

func GateY[T Amplitude]() *Matrix2[T] {
	return &Matrix2[T]{0, -1i, 1i, 0}
}

func GateZ[T Amplitude]() *Matrix2[T] {
	return &Matrix2[T]{1, 0, 0, -1}
}

func GateH[T Amplitude]() *Matrix2[T] {
	h := T(complex(1/math.Sqrt2, 0))
	return &Matrix2[T]{h, h, h, -h}
}

// GateS is the phase gate diag(1, i); dagger selects its inverse.
func GateS[T Amplitude](dagger bool) *Matrix2[T] {
	if dagger {
		return &Matrix2[T]{1, 0, 0, -1i}
	}
	return &Matrix2[T]{1, 0, 0, 1i}
}

// GateT is the pi/8 gate diag(1, e^{i pi/4}); dagger selects its inverse.
func GateT[T Amplitude](dagger bool) *Matrix2[T] {
	phase := math.Pi / 4
	if dagger {
		phase = -phase
	}
	return &Matrix2[T]{1, 0, 0, T(cmplx.Exp(complex(0, phase)))}
}

func GateRX[T Amplitude](theta float64) *Matrix2[T] {
	c := T(complex(math.Cos(theta/2), 0))
	js := T(complex(0, -math.Sin(theta/2)))
	return &Matrix2[T]{c, js, js, c}
}

func GateRY[T Amplitude](theta float64) *Matrix2[T] {
	c := T(complex(math.Cos(theta/2), 0))
	s := T(complex(math.Sin(theta/2), 0))
	return &Matrix2[T]{c, -s, s, c}
}

func GateRZ[T Amplitude](theta float64) *Matrix2[T] {
	phase := cmplx.Exp(complex(0, theta/2))
	return &Matrix2[T]{T(cmplx.Conj(phase)), 0, 0, T(phase)}
}

// GateZPow is the U1 phase rotation diag(1, e^{i theta}).
func GateZPow[T Amplitude](theta float64) *Matrix2[T] {
	return &Matrix2[T]{1, 0, 0, T(cmplx.Exp(complex(0, theta)))}
}
