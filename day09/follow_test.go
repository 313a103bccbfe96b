package day09

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFollow(t *testing.T) {
	cases := []struct {
		name string
		head position
		knot position
		want position
	}{
		{"overlapping stays", position{0, 0}, position{0, 0}, position{0, 0}},
		{"touching right stays", position{1, 0}, position{0, 0}, position{0, 0}},
		{"touching diagonal stays", position{1, 1}, position{0, 0}, position{0, 0}},
		{"two right pulls one right", position{2, 0}, position{0, 0}, position{1, 0}},
		{"two up pulls one up", position{0, 2}, position{0, 0}, position{0, 1}},
		{"two left pulls one left", position{-2, 0}, position{0, 0}, position{-1, 0}},
		{"knight jump pulls diagonally", position{2, 1}, position{0, 0}, position{1, 1}},
		{"knight jump down-left", position{-1, -2}, position{0, 0}, position{-1, -1}},
		{"double diagonal pulls diagonally", position{2, 2}, position{0, 0}, position{1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, follow(tc.head, tc.knot))
		})
	}
}
