// Package advent2022 collects solutions to the Advent of Code 2022 puzzles,
// one self-contained package per day.
//
// 🎄 What is advent2022?
//
//	A set of independent, afternoon-sized algorithm exercises:
//		• Parsing: mini-languages from terminal transcripts to nested packets
//		• Grids: tree visibility, hill climbing, falling sand, rock towers
//		• Search: Dijkstra, flood fill, branch-and-bound, bitmask DFS
//		• Simulation: rope knots, monkey rounds, CRT raster, mixing
//
// Each dayNN package exposes a small API with the same shape: parse the
// puzzle's plain-text input, compute the part-one and part-two answers,
// return explicit errors for malformed input. Packages never depend on
// each other; the only shared collaborator is the input package, which
// reads a file into lines.
//
// The cmd/advent binary wires every day behind a subcommand:
//
//	advent day12                 # reads inputs/day12.txt
//	advent day12 --input foo.txt # reads an alternative file
//
// and prints one answer per part (day10's second answer is the rendered
// CRT screen, printed as a block).
package advent2022
