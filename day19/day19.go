// Package day19 solves Not Enough Minerals: pick robot-factory blueprints
// that maximize cracked geodes within a time limit.
//
// The search branches on the next robot to build, jumping straight to the
// minute it becomes affordable. Two prunings keep it tractable: building
// more robots of a kind than any recipe can spend per minute is pointless,
// and a branch is cut when even cracking a geode every remaining minute
// cannot beat the best total seen so far.
package day19

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrBadBlueprint is returned for a line not matching the blueprint format.
var ErrBadBlueprint = errors.New("day19: malformed blueprint")

// Resource kinds, used as indices into cost and robot arrays.
const (
	ore = iota
	clay
	obsidian
	geode
	numResources
)

var blueprintRe = regexp.MustCompile(
	`^Blueprint (\d+): Each ore robot costs (\d+) ore\. ` +
		`Each clay robot costs (\d+) ore\. ` +
		`Each obsidian robot costs (\d+) ore and (\d+) clay\. ` +
		`Each geode robot costs (\d+) ore and (\d+) obsidian\.$`)

// blueprint holds per-robot costs indexed by [robot][resource].
type blueprint struct {
	id    int
	costs [numResources][numResources]int
	// caps[r] is the most robots of kind r worth owning: the highest
	// amount of resource r any single recipe spends.
	caps [numResources]int
}

func parseBlueprints(lines []string) ([]blueprint, error) {
	blueprints := make([]blueprint, 0, len(lines))
	for _, line := range lines {
		m := blueprintRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadBlueprint, line)
		}
		nums := make([]int, len(m)-1)
		for i, s := range m[1:] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadBlueprint, line, err)
			}
			nums[i] = n
		}

		var bp blueprint
		bp.id = nums[0]
		bp.costs[ore][ore] = nums[1]
		bp.costs[clay][ore] = nums[2]
		bp.costs[obsidian][ore] = nums[3]
		bp.costs[obsidian][clay] = nums[4]
		bp.costs[geode][ore] = nums[5]
		bp.costs[geode][obsidian] = nums[6]

		for robot := ore; robot < numResources; robot++ {
			for res := ore; res < geode; res++ {
				if bp.costs[robot][res] > bp.caps[res] {
					bp.caps[res] = bp.costs[robot][res]
				}
			}
		}
		bp.caps[geode] = 1 << 30 // never stop building geode robots

		blueprints = append(blueprints, bp)
	}

	return blueprints, nil
}

type state struct {
	left      int
	resources [numResources]int
	robots    [numResources]int
}

// maxGeodes returns the most geodes bp can crack in the given minutes.
func (bp blueprint) maxGeodes(minutes int) int {
	start := state{left: minutes}
	start.robots[ore] = 1
	best := 0
	bp.search(start, &best)

	return best
}

func (bp blueprint) search(s state, best *int) {
	// Harvest of the current robots if we build nothing more.
	idle := s.resources[geode] + s.robots[geode]*s.left
	if idle > *best {
		*best = idle
	}
	// Even a new geode robot every minute cannot catch up.
	if idle+s.left*(s.left-1)/2 <= *best {
		return
	}

	for robot := ore; robot < numResources; robot++ {
		if s.robots[robot] >= bp.caps[robot] {
			continue
		}
		wait, ok := bp.timeToAfford(s, robot)
		if !ok || wait+1 >= s.left {
			continue
		}

		next := s
		next.left -= wait + 1
		for res := ore; res < numResources; res++ {
			next.resources[res] += s.robots[res]*(wait+1) - bp.costs[robot][res]
		}
		next.robots[robot]++
		bp.search(next, best)
	}
}

// timeToAfford returns how many whole minutes must pass before the robot's
// recipe is affordable, or false when a required resource has no robot.
func (bp blueprint) timeToAfford(s state, robot int) (int, bool) {
	wait := 0
	for res := ore; res < numResources; res++ {
		need := bp.costs[robot][res] - s.resources[res]
		if need <= 0 {
			continue
		}
		if s.robots[res] == 0 {
			return 0, false
		}
		if w := (need + s.robots[res] - 1) / s.robots[res]; w > wait {
			wait = w
		}
	}

	return wait, true
}

// QualityLevelSum sums id times max geodes over all blueprints with a
// 24-minute budget.
func QualityLevelSum(lines []string) (int, error) {
	blueprints, err := parseBlueprints(lines)
	if err != nil {
		return 0, err
	}

	sum := 0
	for _, bp := range blueprints {
		sum += bp.id * bp.maxGeodes(24)
	}

	return sum, nil
}

// TopThreeGeodeProduct multiplies the max geodes of the first three
// blueprints (or fewer, if the list is shorter) with a 32-minute budget.
func TopThreeGeodeProduct(lines []string) (int, error) {
	blueprints, err := parseBlueprints(lines)
	if err != nil {
		return 0, err
	}
	if len(blueprints) > 3 {
		blueprints = blueprints[:3]
	}

	product := 1
	for _, bp := range blueprints {
		product *= bp.maxGeodes(32)
	}

	return product, nil
}
