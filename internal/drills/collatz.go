package drills

import (
	"fmt"
	"math"
)

// maxTripleInput is the largest n for which 3n+1 fits in a uint64.
const maxTripleInput = (math.MaxUint64 - 1) / 3

// CollatzNext returns the value following n: n/2 when even, 3n+1 when odd.
func CollatzNext(n uint64) (uint64, error) {
	if n%2 == 0 {
		return n / 2, nil
	}
	if n > maxTripleInput {
		return 0, fmt.Errorf("%w: at %d", ErrOverflow, n)
	}
	return 3*n + 1, nil
}

// CollatzSequence returns the trajectory from start down to 1, both included.
// On overflow it returns the partial trajectory along with ErrOverflow.
func CollatzSequence(start uint64) ([]uint64, error) {
	if start == 0 {
		return nil, ErrZeroStart
	}

	seq := []uint64{start}
	x := start
	for x != 1 {
		next, err := CollatzNext(x)
		if err != nil {
			return seq, err
		}
		x = next
		seq = append(seq, x)
	}
	return seq, nil
}

// CollatzSteps returns how many transitions it takes start to reach 1.
func CollatzSteps(start uint64) (int, error) {
	seq, err := CollatzSequence(start)
	if err != nil {
		return 0, err
	}
	return len(seq) - 1, nil
}

// CollatzPeak returns the largest value in a trajectory, or 0 when empty.
func CollatzPeak(seq []uint64) uint64 {
	var peak uint64
	for _, v := range seq {
		peak = max(peak, v)
	}
	return peak
}
