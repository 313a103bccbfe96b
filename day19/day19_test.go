package day19

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/input"
)

const sample = `Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.
`

func TestParseBlueprints(t *testing.T) {
	blueprints, err := parseBlueprints(input.Lines(sample))
	require.NoError(t, err)
	require.Len(t, blueprints, 2)

	bp := blueprints[0]
	require.Equal(t, 1, bp.id)
	require.Equal(t, 4, bp.costs[ore][ore])
	require.Equal(t, 2, bp.costs[clay][ore])
	require.Equal(t, 3, bp.costs[obsidian][ore])
	require.Equal(t, 14, bp.costs[obsidian][clay])
	require.Equal(t, 2, bp.costs[geode][ore])
	require.Equal(t, 7, bp.costs[geode][obsidian])

	// No recipe spends more than 4 ore or 14 clay per minute.
	require.Equal(t, 4, bp.caps[ore])
	require.Equal(t, 14, bp.caps[clay])
	require.Equal(t, 7, bp.caps[obsidian])

	_, err = parseBlueprints([]string{"Blueprint 1: Each ore robot costs 4 ore."})
	require.ErrorIs(t, err, ErrBadBlueprint)
}

func TestTimeToAfford(t *testing.T) {
	blueprints, err := parseBlueprints(input.Lines(sample))
	require.NoError(t, err)
	bp := blueprints[0]

	s := state{left: 24}
	s.robots[ore] = 1

	wait, ok := bp.timeToAfford(s, clay)
	require.True(t, ok)
	require.Equal(t, 2, wait)

	// No clay robots yet, so obsidian is out of reach.
	_, ok = bp.timeToAfford(s, obsidian)
	require.False(t, ok)
}

func TestMaxGeodes(t *testing.T) {
	blueprints, err := parseBlueprints(input.Lines(sample))
	require.NoError(t, err)
	require.Equal(t, 9, blueprints[0].maxGeodes(24))
	require.Equal(t, 12, blueprints[1].maxGeodes(24))
}

func TestQualityLevelSum(t *testing.T) {
	got, err := QualityLevelSum(input.Lines(sample))
	require.NoError(t, err)
	require.Equal(t, 33, got)
}

func TestTopThreeGeodeProduct(t *testing.T) {
	got, err := TopThreeGeodeProduct(input.Lines(sample))
	require.NoError(t, err)
	require.Equal(t, 3472, got)
}
