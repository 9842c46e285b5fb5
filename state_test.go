package qkernel

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStateHelpers(t *testing.T) {
	Convey("Given a kernel pool", t, func() {
		pool := testPool(WithWorkers(2), WithParallelThreshold(1))

		Reset(func() {
			pool.Close()
		})

		Convey("NewState prepares a normalized |0...0> vector", func() {
			state := NewState[complex128](3)

			So(len(state), ShouldEqual, 8)
			So(maxDelta(state[:1], []complex128{1}), ShouldEqual, 0)
			So(Norm(state), ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("QubitProbabilities reads out per-qubit marginals", func() {
			state := NewState[complex128](2)
			So(ApplyGate(pool, state, GateX[complex128](), 2, 1, nil), ShouldBeNil)

			probs, err := QubitProbabilities(state, 2)

			So(err, ShouldBeNil)
			So(probs[0].Prob0, ShouldAlmostEqual, 1, 1e-12)
			So(probs[1].Prob1, ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("QubitProbabilities rejects a mismatched length", func() {
			_, err := QubitProbabilities([]complex128{1, 0, 0}, 2)
			So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("SplitState cuts the vector into contiguous pieces", func() {
			state := []complex128{1, 2, 3, 4, 5, 6, 7, 8}

			pieces, err := SplitState(state, 4)

			So(err, ShouldBeNil)
			So(len(pieces), ShouldEqual, 4)
			So(maxDelta(pieces[0], []complex128{1, 2}), ShouldEqual, 0)
			So(maxDelta(pieces[3], []complex128{7, 8}), ShouldEqual, 0)

			Convey("And the pieces are copies, not views", func() {
				pieces[0][0] = 99
				So(maxDelta(state[:1], []complex128{1}), ShouldEqual, 0)
			})
		})

		Convey("SplitState then MergeState round-trips", func() {
			state := []complex128{1, 2, 3, 4, 5, 6, 7, 8}

			pieces, err := SplitState(state, 2)
			So(err, ShouldBeNil)

			merged, err := MergeState(pool, pieces, 3, nil)
			So(err, ShouldBeNil)

			So(maxDelta(merged, state), ShouldEqual, 0)
		})

		Convey("MergeState applies a qubit reordering", func() {
			pieces := [][]complex128{{10, 11}, {12, 13}}

			merged, err := MergeState(pool, pieces, 2, []int{1, 0})

			So(err, ShouldBeNil)
			So(maxDelta(merged, []complex128{10, 12, 11, 13}), ShouldEqual, 0)
		})

		Convey("SplitState rejects invalid shapes", func() {
			Convey("A non power-of-two state", func() {
				_, err := SplitState([]complex128{1, 2, 3}, 1)
				So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
			})

			Convey("A non power-of-two piece count", func() {
				_, err := SplitState([]complex128{1, 2, 3, 4}, 3)
				So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
			})

			Convey("More pieces than states", func() {
				_, err := SplitState([]complex128{1, 2}, 4)
				So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
			})
		})
	})
}
