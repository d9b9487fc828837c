package drills

import (
	"math"
	"strconv"
)

// Category is the outcome of classifying a number.
type Category int

// Classifier categories.
const (
	Number Category = iota
	Fizz
	Buzz
	FizzBuzzBoth
)

// String returns the lowercase label, or "number" for plain numerals.
func (c Category) String() string {
	switch c {
	case Fizz:
		return "fizz"
	case Buzz:
		return "buzz"
	case FizzBuzzBoth:
		return "fizzbuzz"
	default:
		return "number"
	}
}

// IsDivisibleBy reports whether rhs divides lhs. Division by zero is false.
func IsDivisibleBy(lhs, rhs uint32) bool {
	if rhs == 0 {
		return false
	}
	return lhs%rhs == 0
}

// Classify maps n onto a category by divisibility by 3 and 5.
func Classify(n uint32) Category {
	by3, by5 := IsDivisibleBy(n, 3), IsDivisibleBy(n, 5)
	switch {
	case by3 && by5:
		return FizzBuzzBoth
	case by3:
		return Fizz
	case by5:
		return Buzz
	default:
		return Number
	}
}

// FizzBuzz returns the printed form of n: a category label or the numeral.
func FizzBuzz(n uint32) string {
	if c := Classify(n); c != Number {
		return c.String()
	}
	return strconv.FormatUint(uint64(n), 10)
}

// MaxPrealloc caps up-front slice capacity for 1..=n sequences; larger
// ranges grow by append.
const MaxPrealloc = 1 << 16

// FizzBuzzTo returns FizzBuzz(i) for every i in 1..=n.
func FizzBuzzTo(n uint32) []string {
	out := make([]string, 0, min(n, MaxPrealloc))
	for i := uint32(1); i <= n; i++ {
		out = append(out, FizzBuzz(i))
		if i == math.MaxUint32 {
			break
		}
	}
	return out
}
