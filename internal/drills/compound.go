package drills

import (
	"fmt"
	"strings"
)

// Pair is a two-element record of a small integer and a flag.
type Pair struct {
	First  int8
	Second bool
}

// FilledArray returns ten 42s with index 5 zeroed.
func FilledArray() [10]int8 {
	var a [10]int8
	for i := range a {
		a[i] = 42
	}
	a[5] = 0
	return a
}

// SetThrough writes v through p and returns the new value.
func SetThrough(p *int32, v int32) int32 {
	*p = v
	return *p
}

// Window returns a[lo:hi] as a slice that shares the array's storage.
func Window(a *[6]int32, lo, hi int) ([]int32, error) {
	if lo < 0 || hi > len(a) || lo > hi {
		return nil, fmt.Errorf("%w: [%d:%d] of %d", ErrOutOfRange, lo, hi, len(a))
	}
	return a[lo:hi], nil
}

// Concat appends suffix to a growable buffer seeded with prefix.
func Concat(prefix, suffix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(suffix)
	return b.String()
}
