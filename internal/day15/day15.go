// Package day15 runs the lens initialization sequence. Steps are hashed
// with the HASH algorithm, and part 2 plays them through the 256 lens
// boxes to compute the total focusing power.
package day15

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 15, Title: "Lens Library", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	steps := strings.Split(in.Text(), ",")

	p1 := 0
	for _, s := range steps {
		p1 += hash(s)
	}

	boxes, err := runSteps(steps)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Answers{Part1: p1, Part2: focusingPower(boxes)}, nil
}

// hash folds each byte in: add, multiply by 17, keep the low byte.
func hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

type lens struct {
	Label string
	Focal int
}

// runSteps applies the sequence to the 256 boxes: "label=n" inserts or
// replaces in place, "label-" removes and closes the gap.
func runSteps(steps []string) ([256][]lens, error) {
	var boxes [256][]lens

	for _, step := range steps {
		if label, ok := strings.CutSuffix(step, "-"); ok {
			box := hash(label)
			for i, l := range boxes[box] {
				if l.Label == label {
					boxes[box] = append(boxes[box][:i], boxes[box][i+1:]...)
					break
				}
			}
			continue
		}

		label, rawFocal, ok := strings.Cut(step, "=")
		if !ok {
			return boxes, fmt.Errorf("day15: malformed step %q", step)
		}
		focal, err := strconv.Atoi(rawFocal)
		if err != nil {
			return boxes, fmt.Errorf("day15: malformed focal length in %q: %w", step, err)
		}

		box := hash(label)
		replaced := false
		for i, l := range boxes[box] {
			if l.Label == label {
				boxes[box][i].Focal = focal
				replaced = true
				break
			}
		}
		if !replaced {
			boxes[box] = append(boxes[box], lens{Label: label, Focal: focal})
		}
	}

	return boxes, nil
}

func focusingPower(boxes [256][]lens) int {
	power := 0
	for box, lenses := range boxes {
		for slot, l := range lenses {
			power += (box + 1) * (slot + 1) * l.Focal
		}
	}
	return power
}
