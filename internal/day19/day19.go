// Package day19 runs machine parts through the sorting workflows. Part
// 2 pushes whole rating ranges through instead: each rule splits the
// incoming range into the matching slice, which follows the rule's
// target, and the remainder, which falls through to the next rule.
package day19

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 19, Title: "Aplenty", Solve: solve})
}

const (
	minRating = 1
	maxRating = 4000
)

func solve(in puzzle.Input) (puzzle.Answers, error) {
	system, parts, err := parseInput(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}

	var p1 int
	for _, p := range parts {
		ok, err := system.accepts(p)
		if err != nil {
			return puzzle.Answers{}, err
		}
		if ok {
			p1 += p.ratingSum()
		}
	}

	p2, err := system.combinations()
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Answers{Part1: p1, Part2: p2}, nil
}

var categories = map[byte]int{'x': 0, 'm': 1, 'a': 2, 's': 3}

type part [4]int

func (p part) ratingSum() int {
	return p[0] + p[1] + p[2] + p[3]
}

// rule sends matching parts to Target. A rule with no Op always
// matches.
type rule struct {
	Category int
	Op       byte // '<' or '>', 0 for unconditional
	Value    int
	Target   string
}

func (r rule) matches(p part) bool {
	switch r.Op {
	case '<':
		return p[r.Category] < r.Value
	case '>':
		return p[r.Category] > r.Value
	default:
		return true
	}
}

type system map[string][]rule

func (s system) accepts(p part) (bool, error) {
	name := "in"
	for {
		switch name {
		case "A":
			return true, nil
		case "R":
			return false, nil
		}

		rules, ok := s[name]
		if !ok {
			return false, fmt.Errorf("day19: unknown workflow %q", name)
		}
		matched := false
		for _, r := range rules {
			if r.matches(p) {
				name = r.Target
				matched = true
				break
			}
		}
		if !matched {
			return false, fmt.Errorf("day19: workflow %q has no matching rule", name)
		}
	}
}

// ratingSpan is a half-open range of one rating category.
type ratingSpan struct {
	Lo, Hi int
}

func (s ratingSpan) size() int64 {
	if s.Hi <= s.Lo {
		return 0
	}
	return int64(s.Hi - s.Lo)
}

type partRange [4]ratingSpan

func (pr partRange) size() int64 {
	n := int64(1)
	for _, s := range pr {
		n *= s.size()
	}
	return n
}

// split cuts the range along a rule: the part that satisfies it and the
// part that does not.
func (r rule) split(pr partRange) (matched, rest partRange) {
	matched, rest = pr, pr
	span := pr[r.Category]

	switch r.Op {
	case '<':
		matched[r.Category] = ratingSpan{Lo: span.Lo, Hi: min(span.Hi, r.Value)}
		rest[r.Category] = ratingSpan{Lo: max(span.Lo, r.Value), Hi: span.Hi}
	case '>':
		matched[r.Category] = ratingSpan{Lo: max(span.Lo, r.Value+1), Hi: span.Hi}
		rest[r.Category] = ratingSpan{Lo: span.Lo, Hi: min(span.Hi, r.Value+1)}
	default:
		rest[r.Category] = ratingSpan{}
	}
	return matched, rest
}

// combinations counts the rating assignments in [1, 4000]^4 that end up
// accepted.
func (s system) combinations() (int64, error) {
	full := partRange{}
	for i := range full {
		full[i] = ratingSpan{Lo: minRating, Hi: maxRating + 1}
	}
	return s.countAccepted("in", full)
}

func (s system) countAccepted(name string, pr partRange) (int64, error) {
	if pr.size() == 0 {
		return 0, nil
	}
	switch name {
	case "A":
		return pr.size(), nil
	case "R":
		return 0, nil
	}

	rules, ok := s[name]
	if !ok {
		return 0, fmt.Errorf("day19: unknown workflow %q", name)
	}

	var total int64
	for _, r := range rules {
		matched, rest := r.split(pr)
		n, err := s.countAccepted(r.Target, matched)
		if err != nil {
			return 0, err
		}
		total += n
		pr = rest
	}
	return total, nil
}

func parseInput(lines []string) (system, []part, error) {
	s := make(system)

	i := 0
	for ; i < len(lines) && lines[i] != ""; i++ {
		name, rules, err := parseWorkflow(lines[i])
		if err != nil {
			return nil, nil, err
		}
		if _, dup := s[name]; dup {
			return nil, nil, fmt.Errorf("day19: duplicate workflow %q", name)
		}
		s[name] = rules
	}
	i++

	var parts []part
	for ; i < len(lines); i++ {
		p, err := parsePart(lines[i])
		if err != nil {
			return nil, nil, err
		}
		parts = append(parts, p)
	}

	return s, parts, nil
}

func parseWorkflow(line string) (string, []rule, error) {
	name, body, ok := strings.Cut(strings.TrimSuffix(line, "}"), "{")
	if !ok || name == "" {
		return "", nil, fmt.Errorf("day19: malformed workflow %q", line)
	}

	var rules []rule
	for _, raw := range strings.Split(body, ",") {
		cond, target, ok := strings.Cut(raw, ":")
		if !ok {
			rules = append(rules, rule{Target: raw})
			continue
		}
		if len(cond) < 3 {
			return "", nil, fmt.Errorf("day19: malformed rule %q in %q", raw, line)
		}

		cat, ok := categories[cond[0]]
		if !ok {
			return "", nil, fmt.Errorf("day19: invalid category in rule %q", raw)
		}
		op := cond[1]
		if op != '<' && op != '>' {
			return "", nil, fmt.Errorf("day19: invalid comparison in rule %q", raw)
		}
		value, err := strconv.Atoi(cond[2:])
		if err != nil {
			return "", nil, fmt.Errorf("day19: malformed threshold in rule %q: %w", raw, err)
		}

		rules = append(rules, rule{Category: cat, Op: op, Value: value, Target: target})
	}

	if len(rules) == 0 || rules[len(rules)-1].Op != 0 {
		return "", nil, fmt.Errorf("day19: workflow %q lacks a fallback rule", line)
	}
	return name, rules, nil
}

func parsePart(line string) (part, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(line, "{"), "}")

	var p part
	seen := 0
	for _, raw := range strings.Split(body, ",") {
		name, rawValue, ok := strings.Cut(raw, "=")
		if !ok || len(name) != 1 {
			return part{}, fmt.Errorf("day19: malformed rating %q in %q", raw, line)
		}
		cat, ok := categories[name[0]]
		if !ok {
			return part{}, fmt.Errorf("day19: invalid category %q in %q", name, line)
		}
		value, err := strconv.Atoi(rawValue)
		if err != nil {
			return part{}, fmt.Errorf("day19: malformed rating value in %q: %w", line, err)
		}
		p[cat] = value
		seen++
	}

	if seen != 4 {
		return part{}, fmt.Errorf("day19: part %q has %d ratings, want 4", line, seen)
	}
	return p, nil
}
