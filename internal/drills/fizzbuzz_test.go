package drills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFizzBuzz(t *testing.T) {
	tests := []struct {
		n    uint32
		want string
		cat  Category
	}{
		{n: 15, want: "fizzbuzz", cat: FizzBuzzBoth},
		{n: 9, want: "fizz", cat: Fizz},
		{n: 10, want: "buzz", cat: Buzz},
		{n: 7, want: "7", cat: Number},
		{n: 1, want: "1", cat: Number},
		{n: 0, want: "fizzbuzz", cat: FizzBuzzBoth},
		{n: 30, want: "fizzbuzz", cat: FizzBuzzBoth},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FizzBuzz(tt.n))
			assert.Equal(t, tt.cat, Classify(tt.n))
		})
	}
}

func TestClassify_Divisibility(t *testing.T) {
	for n := uint32(0); n <= 300; n++ {
		got := Classify(n)
		switch {
		case n%15 == 0:
			assert.Equal(t, FizzBuzzBoth, got, "n=%d", n)
		case n%3 == 0:
			assert.Equal(t, Fizz, got, "n=%d", n)
		case n%5 == 0:
			assert.Equal(t, Buzz, got, "n=%d", n)
		default:
			assert.Equal(t, Number, got, "n=%d", n)
		}
	}
}

func TestIsDivisibleBy(t *testing.T) {
	assert.True(t, IsDivisibleBy(9, 3))
	assert.False(t, IsDivisibleBy(10, 3))
	assert.False(t, IsDivisibleBy(10, 0), "division by zero is never divisible")
	assert.True(t, IsDivisibleBy(0, 7))
}

func TestFizzBuzzTo(t *testing.T) {
	assert.Empty(t, FizzBuzzTo(0))
	assert.Equal(t, []string{"1", "2", "fizz", "4", "buzz"}, FizzBuzzTo(5))

	got := FizzBuzzTo(20)
	assert.Len(t, got, 20)
	assert.Equal(t, "fizzbuzz", got[14])
	assert.Equal(t, "buzz", got[19])
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "number", Number.String())
	assert.Equal(t, "fizz", Fizz.String())
	assert.Equal(t, "buzz", Buzz.String())
	assert.Equal(t, "fizzbuzz", FizzBuzzBoth.String())
}

func TestFizzBuzzTo_BeyondPrealloc(t *testing.T) {
	n := uint32(MaxPrealloc + 2)
	got := FizzBuzzTo(n)
	require.Len(t, got, int(n))
	assert.Equal(t, "65537", got[n-2])
	assert.Equal(t, "fizz", got[n-1], "65538 is divisible by 3")
}
