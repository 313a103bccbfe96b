// Package day02 solves Rock Paper Scissors: score a strategy guide under
// two interpretations of its second column.
package day02

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for strategy guide parsing.
var (
	// ErrBadMove is returned for a letter outside A-C / X-Z.
	ErrBadMove = errors.New("day02: invalid move letter")
	// ErrBadOutcome is returned for an outcome letter outside X-Z.
	ErrBadOutcome = errors.New("day02: invalid outcome letter")
	// ErrBadRound is returned when a line is not two space-separated fields.
	ErrBadRound = errors.New("day02: malformed round")
)

// Move is one of the three shapes.
type Move int

const (
	Rock Move = iota + 1 // shape scores are 1, 2, 3
	Paper
	Scissors
)

// Outcome of a round from our point of view.
type Outcome int

const (
	Lose Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// beats[m] is the move m defeats.
var beats = map[Move]Move{Rock: Scissors, Paper: Rock, Scissors: Paper}

// losesTo[m] is the move that defeats m.
var losesTo = map[Move]Move{Scissors: Rock, Rock: Paper, Paper: Scissors}

func parseOpponentMove(s string) (Move, error) {
	switch s {
	case "A":
		return Rock, nil
	case "B":
		return Paper, nil
	case "C":
		return Scissors, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadMove, s)
	}
}

func parseOurMove(s string) (Move, error) {
	switch s {
	case "X":
		return Rock, nil
	case "Y":
		return Paper, nil
	case "Z":
		return Scissors, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadMove, s)
	}
}

func parseOutcome(s string) (Outcome, error) {
	switch s {
	case "X":
		return Lose, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadOutcome, s)
	}
}

// outcome reports how our move fares against the opponent's.
func outcome(opponent, our Move) Outcome {
	switch {
	case our == opponent:
		return Draw
	case beats[our] == opponent:
		return Win
	default:
		return Lose
	}
}

// roundScore is the shape score plus the outcome score.
func roundScore(opponent, our Move) int {
	return int(our) + int(outcome(opponent, our))
}

func splitRound(line string) (string, string, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrBadRound, line)
	}

	return fields[0], fields[1], nil
}

// TotalScore scores the guide reading the second column as our move.
func TotalScore(lines []string) (int, error) {
	total := 0
	for _, line := range lines {
		first, second, err := splitRound(line)
		if err != nil {
			return 0, err
		}
		opponent, err := parseOpponentMove(first)
		if err != nil {
			return 0, err
		}
		our, err := parseOurMove(second)
		if err != nil {
			return 0, err
		}
		total += roundScore(opponent, our)
	}

	return total, nil
}

// TotalScoreDecoded scores the guide reading the second column as the
// required outcome, deriving the move we must pick.
func TotalScoreDecoded(lines []string) (int, error) {
	total := 0
	for _, line := range lines {
		first, second, err := splitRound(line)
		if err != nil {
			return 0, err
		}
		opponent, err := parseOpponentMove(first)
		if err != nil {
			return 0, err
		}
		want, err := parseOutcome(second)
		if err != nil {
			return 0, err
		}

		var our Move
		switch want {
		case Win:
			our = losesTo[opponent]
		case Draw:
			our = opponent
		case Lose:
			our = beats[opponent]
		}
		total += roundScore(opponent, our)
	}

	return total, nil
}
