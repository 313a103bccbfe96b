package day20

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var sample = []string{"1", "2", "-3", "3", "-2", "0", "4"}

// atZero rotates mixed so the zero element comes first, making the circle
// comparable regardless of where the mix left it.
func atZero(t *testing.T, mixed []int) []int {
	t.Helper()
	for i, v := range mixed {
		if v == 0 {
			return append(mixed[i:], mixed[:i]...)
		}
	}
	t.Fatal("no zero in mixed sequence")

	return nil
}

func TestMix(t *testing.T) {
	mixed := Mix([]int{1, 2, -3, 3, -2, 0, 4}, 1)
	require.Equal(t, []int{0, 3, -2, 1, 2, -3, 4}, atZero(t, mixed))
}

func TestMix_TenRoundsWithKey(t *testing.T) {
	values := []int{1, 2, -3, 3, -2, 0, 4}
	for i := range values {
		values[i] *= 811589153
	}
	mixed := Mix(values, 10)
	require.Equal(t,
		[]int{0, -2434767459, 1623178306, 3246356612, -1623178306, 2434767459, 811589153},
		atZero(t, mixed))
}

func TestMix_Short(t *testing.T) {
	require.Equal(t, []int{5}, Mix([]int{5}, 3))
	require.Empty(t, Mix(nil, 1))
}

func TestGroveCoordinates(t *testing.T) {
	got, err := GroveCoordinates(sample)
	require.NoError(t, err)
	require.Equal(t, 3, got)
}

func TestGroveCoordinates_Errors(t *testing.T) {
	_, err := GroveCoordinates([]string{"1", "two"})
	require.ErrorIs(t, err, ErrBadNumber)

	_, err = GroveCoordinates([]string{"1", "2"})
	require.ErrorIs(t, err, ErrNoZero)
}

func TestDecryptedGroveCoordinates(t *testing.T) {
	got, err := DecryptedGroveCoordinates(sample)
	require.NoError(t, err)
	require.Equal(t, 1623178306, got)
}
