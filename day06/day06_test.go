package day06_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/day06"
)

func TestPacketMarker(t *testing.T) {
	cases := []struct {
		stream string
		want   int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11},
	}
	for _, tc := range cases {
		got, err := day06.PacketMarker([]string{tc.stream})
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "stream %q", tc.stream)
	}
}

func TestMessageMarker(t *testing.T) {
	cases := []struct {
		stream string
		want   int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 26},
	}
	for _, tc := range cases {
		got, err := day06.MessageMarker([]string{tc.stream})
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "stream %q", tc.stream)
	}
}

func TestMarkerErrors(t *testing.T) {
	_, err := day06.PacketMarker(nil)
	assert.ErrorIs(t, err, day06.ErrEmptyInput)

	_, err = day06.PacketMarker([]string{"aaaa"})
	assert.ErrorIs(t, err, day06.ErrNoMarker)
}
