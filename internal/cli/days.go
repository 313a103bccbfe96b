package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2022/day01"
	"github.com/katalvlaran/advent2022/day02"
	"github.com/katalvlaran/advent2022/day03"
	"github.com/katalvlaran/advent2022/day04"
	"github.com/katalvlaran/advent2022/day05"
	"github.com/katalvlaran/advent2022/day06"
	"github.com/katalvlaran/advent2022/day07"
	"github.com/katalvlaran/advent2022/day08"
	"github.com/katalvlaran/advent2022/day09"
	"github.com/katalvlaran/advent2022/day10"
	"github.com/katalvlaran/advent2022/day11"
	"github.com/katalvlaran/advent2022/day12"
	"github.com/katalvlaran/advent2022/day13"
	"github.com/katalvlaran/advent2022/day14"
	"github.com/katalvlaran/advent2022/day15"
	"github.com/katalvlaran/advent2022/day16"
	"github.com/katalvlaran/advent2022/day17"
	"github.com/katalvlaran/advent2022/day18"
	"github.com/katalvlaran/advent2022/day19"
	"github.com/katalvlaran/advent2022/day20"
	"github.com/katalvlaran/advent2022/day21"
	"github.com/katalvlaran/advent2022/input"
)

// Production parameters that differ from the worked examples.
const (
	beaconRow     = 2000000
	beaconBound   = 4000000
	rocksPart1    = 2022
	rocksPart2    = 1000000000000
	ropeTailShort = 1
	ropeTailLong  = 9
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

// day describes one puzzle: its command name, title and solver. The solver
// returns one answer string per part; multi-line answers are printed as a
// block under their label.
type day struct {
	number int
	title  string
	solve  func(lines []string) ([]string, error)
}

var days = []day{
	{1, "Calorie Counting", func(lines []string) ([]string, error) {
		return twoInts(lines, day01.MostCalories, day01.TopThreeCalories)
	}},
	{2, "Rock Paper Scissors", func(lines []string) ([]string, error) {
		return twoInts(lines, day02.TotalScore, day02.TotalScoreDecoded)
	}},
	{3, "Rucksack Reorganization", func(lines []string) ([]string, error) {
		return twoInts(lines, day03.PrioritySum, day03.BadgePrioritySum)
	}},
	{4, "Camp Cleanup", func(lines []string) ([]string, error) {
		return twoInts(lines, day04.FullyContainedCount, day04.OverlapCount)
	}},
	{5, "Supply Stacks", func(lines []string) ([]string, error) {
		one, err := day05.TopCrates(lines)
		if err != nil {
			return nil, err
		}
		two, err := day05.TopCratesBulk(lines)
		if err != nil {
			return nil, err
		}
		return []string{one, two}, nil
	}},
	{6, "Tuning Trouble", func(lines []string) ([]string, error) {
		return twoInts(lines, day06.PacketMarker, day06.MessageMarker)
	}},
	{7, "No Space Left On Device", func(lines []string) ([]string, error) {
		return twoInts(lines, day07.SmallDirectoriesTotal, day07.SmallestFreeingDirSize)
	}},
	{8, "Treetop Tree House", func(lines []string) ([]string, error) {
		return twoInts(lines, day08.VisibleTrees, day08.BestScenicScore)
	}},
	{9, "Rope Bridge", func(lines []string) ([]string, error) {
		one, err := day09.TailVisits(lines, ropeTailShort)
		if err != nil {
			return nil, err
		}
		two, err := day09.TailVisits(lines, ropeTailLong)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(one), strconv.Itoa(two)}, nil
	}},
	{10, "Cathode-Ray Tube", func(lines []string) ([]string, error) {
		one, err := day10.SignalStrengthSum(lines)
		if err != nil {
			return nil, err
		}
		screen, err := day10.Render(lines)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(one), screen}, nil
	}},
	{11, "Monkey in the Middle", func(lines []string) ([]string, error) {
		one, err := day11.MonkeyBusiness(lines)
		if err != nil {
			return nil, err
		}
		two, err := day11.MonkeyBusiness(lines, day11.WithRounds(10000), day11.WithoutRelief())
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(one), strconv.Itoa(two)}, nil
	}},
	{12, "Hill Climbing Algorithm", func(lines []string) ([]string, error) {
		return twoInts(lines, day12.FewestSteps, day12.FewestStepsFromLow)
	}},
	{13, "Distress Signal", func(lines []string) ([]string, error) {
		return twoInts(lines, day13.OrderedPairSum, day13.DecoderKey)
	}},
	{14, "Regolith Reservoir", func(lines []string) ([]string, error) {
		return twoInts(lines, day14.SandAtRest, day14.SandUntilBlocked)
	}},
	{15, "Beacon Exclusion Zone", func(lines []string) ([]string, error) {
		one, err := day15.ExcludedInRow(lines, beaconRow)
		if err != nil {
			return nil, err
		}
		two, err := day15.TuningFrequency(lines, 0, beaconBound)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(one), strconv.Itoa(two)}, nil
	}},
	{16, "Proboscidea Volcanium", func(lines []string) ([]string, error) {
		return twoInts(lines, day16.MostPressure, day16.MostPressureWithElephant)
	}},
	{17, "Pyroclastic Flow", func(lines []string) ([]string, error) {
		one, err := day17.TowerHeight(lines, rocksPart1)
		if err != nil {
			return nil, err
		}
		two, err := day17.TowerHeight(lines, rocksPart2)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(one), strconv.Itoa(two)}, nil
	}},
	{18, "Boiling Boulders", func(lines []string) ([]string, error) {
		return twoInts(lines, day18.SurfaceArea, day18.ExteriorSurfaceArea)
	}},
	{19, "Not Enough Minerals", func(lines []string) ([]string, error) {
		return twoInts(lines, day19.QualityLevelSum, day19.TopThreeGeodeProduct)
	}},
	{20, "Grove Positioning System", func(lines []string) ([]string, error) {
		return twoInts(lines, day20.GroveCoordinates, day20.DecryptedGroveCoordinates)
	}},
	{21, "Monkey Math", func(lines []string) ([]string, error) {
		return twoInts(lines, day21.RootNumber, day21.HumanNumber)
	}},
}

// twoInts runs both integer-valued parts over the same lines.
func twoInts(lines []string, part1, part2 func([]string) (int, error)) ([]string, error) {
	one, err := part1(lines)
	if err != nil {
		return nil, err
	}
	two, err := part2(lines)
	if err != nil {
		return nil, err
	}

	return []string{strconv.Itoa(one), strconv.Itoa(two)}, nil
}

func newDayCmd(d day) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("day%d", d.number),
		Short: d.title,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lines, err := input.ReadLines(path)
			if err != nil {
				return err
			}
			slog.Debug("input loaded", "day", d.number, "path", path, "lines", len(lines))

			started := time.Now()
			answers, err := d.solve(lines)
			if err != nil {
				return err
			}
			slog.Debug("solved", "day", d.number, "elapsed", time.Since(started))

			out := cmd.OutOrStdout()
			for i, answer := range answers {
				label := labelStyle.Render(fmt.Sprintf("Part %d:", i+1))
				if strings.Contains(answer, "\n") {
					fmt.Fprintf(out, "%s\n%s", label, valueStyle.Render(answer))
					continue
				}
				fmt.Fprintf(out, "%s %s\n", label, valueStyle.Render(answer))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "input", "i", fmt.Sprintf("inputs/day%d.txt", d.number), "puzzle input file")

	return cmd
}
