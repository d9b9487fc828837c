package drills

import "os"

// PickOne returns a or b depending on the parity of the current process id.
func PickOne[T any](a, b T) T {
	return PickBy(os.Getpid(), a, b)
}

// PickBy returns a when seed is even, b otherwise.
func PickBy[T any](seed int, a, b T) T {
	if seed%2 == 0 {
		return a
	}
	return b
}
