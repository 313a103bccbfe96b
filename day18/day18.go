// Package day18 solves Boiling Boulders: measure the surface area of a
// lava droplet scanned as unit cubes.
package day18

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for droplet scans.
var (
	// ErrBadCube is returned for a line that is not three comma-separated ints.
	ErrBadCube = errors.New("day18: malformed cube coordinates")
	// ErrNoCubes is returned when the exterior scan has no droplet to bound.
	ErrNoCubes = errors.New("day18: no cubes in scan")
)

type cube struct {
	x, y, z int
}

// neighbors enumerates the six face-adjacent offsets.
var neighbors = [6]cube{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

func (c cube) add(d cube) cube {
	return cube{x: c.x + d.x, y: c.y + d.y, z: c.z + d.z}
}

func parseCubes(lines []string) (map[cube]bool, error) {
	cubes := make(map[cube]bool, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrBadCube, line)
		}
		var c cube
		for i, dst := range []*int{&c.x, &c.y, &c.z} {
			n, err := strconv.Atoi(parts[i])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadCube, line, err)
			}
			*dst = n
		}
		cubes[c] = true
	}

	return cubes, nil
}

// SurfaceArea counts cube faces not shared with another cube, including
// faces of interior air pockets.
func SurfaceArea(lines []string) (int, error) {
	cubes, err := parseCubes(lines)
	if err != nil {
		return 0, err
	}

	area := 0
	for c := range cubes {
		for _, d := range neighbors {
			if !cubes[c.add(d)] {
				area++
			}
		}
	}

	return area, nil
}

// ExteriorSurfaceArea counts only faces reachable by water and steam. A
// flood fill walks the droplet's bounding box expanded by one unit and
// tallies every face it touches.
func ExteriorSurfaceArea(lines []string) (int, error) {
	cubes, err := parseCubes(lines)
	if err != nil {
		return 0, err
	}
	if len(cubes) == 0 {
		return 0, ErrNoCubes
	}

	var lo, hi cube
	first := true
	for c := range cubes {
		if first {
			lo, hi = c, c
			first = false
			continue
		}
		lo = cube{x: minInt(lo.x, c.x), y: minInt(lo.y, c.y), z: minInt(lo.z, c.z)}
		hi = cube{x: maxInt(hi.x, c.x), y: maxInt(hi.y, c.y), z: maxInt(hi.z, c.z)}
	}
	lo = cube{x: lo.x - 1, y: lo.y - 1, z: lo.z - 1}
	hi = cube{x: hi.x + 1, y: hi.y + 1, z: hi.z + 1}

	inBox := func(c cube) bool {
		return c.x >= lo.x && c.x <= hi.x &&
			c.y >= lo.y && c.y <= hi.y &&
			c.z >= lo.z && c.z <= hi.z
	}

	area := 0
	visited := map[cube]bool{lo: true}
	queue := []cube{lo}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range neighbors {
			n := c.add(d)
			if !inBox(n) || visited[n] {
				continue
			}
			if cubes[n] {
				area++
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return area, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
