package greeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b     int
		expected int
	}{
		{2, 3, 5},
		{0, 0, 0},
		{-4, 4, 0},
		{-2, -3, -5},
		{1000000, 1, 1000001},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Add(tc.a, tc.b), "Add(%d, %d)", tc.a, tc.b)
	}
}

func TestAdd_Properties(t *testing.T) {
	values := []int{-7, -1, 0, 1, 2, 3, 42}

	t.Run("Commutative", func(t *testing.T) {
		for _, a := range values {
			for _, b := range values {
				assert.Equal(t, Add(a, b), Add(b, a))
			}
		}
	})

	t.Run("Associative", func(t *testing.T) {
		for _, a := range values {
			for _, b := range values {
				for _, c := range values {
					assert.Equal(t, Add(Add(a, b), c), Add(a, Add(b, c)))
				}
			}
		}
	})
}

func TestGreet(t *testing.T) {
	assert.Equal(t, "Hello, Jenkins!", Greet("Jenkins"))

	for _, name := range []string{"", "World", "세계", "Jane Doe"} {
		assert.Equal(t, "Hello, "+name+"!", Greet(name))
	}
}
