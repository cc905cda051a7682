// Package day05 walks seeds through the almanac's category conversion
// maps. Part 2 treats the seed list as ranges and composes the piecewise
// mappings instead of probing every seed.
package day05

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 5, Title: "If You Give A Seed A Fertilizer", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	p, err := parsePlan(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}

	p1, err := p.lowestSeedLocation()
	if err != nil {
		return puzzle.Answers{}, err
	}

	p.addImplicitMappings()
	p2, err := p.lowestSeedLocationFromRanges()
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Answers{Part1: p1, Part2: p2}, nil
}

type category int

const (
	catSeed category = iota
	catSoil
	catFertilizer
	catWater
	catLight
	catTemperature
	catHumidity
	catLocation
)

var categoryNames = map[string]category{
	"seed":        catSeed,
	"soil":        catSoil,
	"fertilizer":  catFertilizer,
	"water":       catWater,
	"light":       catLight,
	"temperature": catTemperature,
	"humidity":    catHumidity,
	"location":    catLocation,
}

func parseCategory(s string) (category, error) {
	c, ok := categoryNames[s]
	if !ok {
		return 0, fmt.Errorf("day05: invalid category %q", s)
	}
	return c, nil
}

// mapping relocates the source span [SrcStart, SrcStart+Length) to start
// at DstStart.
type mapping struct {
	DstStart int64
	SrcStart int64
	Length   int64
}

func (m mapping) lookup(src int64) (int64, bool) {
	distance := src - m.SrcStart
	if distance < 0 || distance >= m.Length {
		return 0, false
	}
	return m.DstStart + distance, true
}

// intersect restricts m to the part of its destination span covered by
// other's source span, splitting m into up to three pieces: before,
// overlap, after. Zero-length pieces are dropped.
func (m mapping) intersect(other mapping) []mapping {
	ixn, ok := span{m.DstStart, m.DstStart + m.Length}.
		intersect(span{other.SrcStart, other.SrcStart + other.Length})
	if !ok {
		return nil
	}

	offset := m.DstStart - m.SrcStart
	pieces := []mapping{
		{SrcStart: m.SrcStart, DstStart: m.DstStart, Length: ixn.Start - m.DstStart},
		{SrcStart: ixn.Start - offset, DstStart: ixn.Start, Length: ixn.length()},
		{SrcStart: ixn.End - offset, DstStart: ixn.End, Length: m.Length - ixn.length() - (ixn.Start - m.DstStart)},
	}

	out := pieces[:0]
	for _, p := range pieces {
		if p.Length > 0 {
			out = append(out, p)
		}
	}
	return out
}

type span struct {
	Start, End int64 // half-open
}

func (s span) length() int64 {
	return s.End - s.Start
}

func (s span) intersect(other span) (span, bool) {
	start := max(s.Start, other.Start)
	end := min(s.End, other.End)
	if start >= end {
		return span{}, false
	}
	return span{Start: start, End: end}, true
}

type conversionMap struct {
	Src, Dst category
	Mappings []mapping
}

// dstValue maps a source value through the first matching mapping, or
// returns it unchanged when no mapping covers it.
func (cm conversionMap) dstValue(src int64) int64 {
	for _, m := range cm.Mappings {
		if dst, ok := m.lookup(src); ok {
			return dst
		}
	}
	return src
}

type plan struct {
	Seeds []int64
	Maps  map[category]conversionMap // keyed by source category
}

func (p *plan) mapByDst(dst category) (conversionMap, bool) {
	for _, cm := range p.Maps {
		if cm.Dst == dst {
			return cm, true
		}
	}
	return conversionMap{}, false
}

func (p *plan) locationForSeed(seed int64) (int64, error) {
	cm, ok := p.Maps[catSeed]
	if !ok {
		return 0, fmt.Errorf("day05: no conversion map from seed")
	}
	value := cm.dstValue(seed)

	for cm.Dst != catLocation {
		cm, ok = p.Maps[cm.Dst]
		if !ok {
			return 0, fmt.Errorf("day05: conversion chain broken at category %d", cm.Dst)
		}
		value = cm.dstValue(value)
	}

	return value, nil
}

func (p *plan) lowestSeedLocation() (int64, error) {
	lowest := int64(math.MaxInt64)
	for _, s := range p.Seeds {
		loc, err := p.locationForSeed(s)
		if err != nil {
			return 0, err
		}
		lowest = min(lowest, loc)
	}
	return lowest, nil
}

// addImplicitMappings materialises the identity mappings between the
// explicit ones, so every value in [0, 2^32) is covered by exactly one
// mapping. Range composition relies on this.
func (p *plan) addImplicitMappings() {
	for src, cm := range p.Maps {
		starts := []int64{0, int64(math.MaxUint32)}
		for _, m := range cm.Mappings {
			starts = append(starts, m.SrcStart, m.SrcStart+m.Length)
		}
		sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })

		complete := make([]mapping, 0, len(starts)-1)
		for i := 0; i+1 < len(starts); i++ {
			start, end := starts[i], starts[i+1]
			if existing, ok := mappingAt(cm.Mappings, start); ok {
				complete = append(complete, existing)
			} else {
				complete = append(complete, mapping{SrcStart: start, DstStart: start, Length: end - start})
			}
		}

		cm.Mappings = complete
		p.Maps[src] = cm
	}
}

func mappingAt(mappings []mapping, srcStart int64) (mapping, bool) {
	for _, m := range mappings {
		if m.SrcStart == srcStart {
			return m, true
		}
	}
	return mapping{}, false
}

// lowestSeedLocationFromRanges composes the conversion maps back to
// front: starting from the map into location, each earlier map's
// mappings are intersected against the running set, yielding the source
// ranges on which the full pipeline is piecewise linear. The minimum
// location must occur at the start of one of those ranges restricted to
// the seed ranges.
func (p *plan) lowestSeedLocationFromRanges() (int64, error) {
	cm, ok := p.mapByDst(catLocation)
	if !ok {
		return 0, fmt.Errorf("day05: no conversion map into location")
	}

	mappings := append([]mapping(nil), cm.Mappings...)
	sort.SliceStable(mappings, func(i, j int) bool { return mappings[i].SrcStart < mappings[j].SrcStart })

	for {
		next, ok := p.mapByDst(cm.Src)
		if !ok {
			break
		}
		cm = next

		var composed []mapping
		for _, m1 := range cm.Mappings {
			for _, m2 := range mappings {
				composed = append(composed, m1.intersect(m2)...)
			}
		}
		sort.SliceStable(composed, func(i, j int) bool { return composed[i].SrcStart < composed[j].SrcStart })
		mappings = compact(composed)
	}

	if len(p.Seeds)%2 != 0 {
		return 0, fmt.Errorf("day05: odd seed count %d, expected start/length pairs", len(p.Seeds))
	}
	seedRanges := make([]span, 0, len(p.Seeds)/2)
	for i := 0; i+1 < len(p.Seeds); i += 2 {
		seedRanges = append(seedRanges, span{Start: p.Seeds[i], End: p.Seeds[i] + p.Seeds[i+1]})
	}

	var candidates []int64
	for _, m := range mappings {
		srcRange := span{Start: m.SrcStart, End: m.SrcStart + m.Length}
		for _, sr := range seedRanges {
			if ixn, ok := srcRange.intersect(sr); ok {
				candidates = append(candidates, ixn.Start)
			}
		}
	}
	if len(candidates) == 0 {
		return 0, fmt.Errorf("day05: no seed range overlaps any mapping")
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	lowest := int64(math.MaxInt64)
	var last int64
	for i, c := range candidates {
		if i > 0 && c == last {
			continue
		}
		last = c
		loc, err := p.locationForSeed(c)
		if err != nil {
			return 0, err
		}
		lowest = min(lowest, loc)
	}

	return lowest, nil
}

// compact removes adjacent duplicate mappings, mirroring a dedup after
// a stable sort.
func compact(mappings []mapping) []mapping {
	if len(mappings) == 0 {
		return mappings
	}
	out := mappings[:1]
	for _, m := range mappings[1:] {
		if m != out[len(out)-1] {
			out = append(out, m)
		}
	}
	return out
}

func parsePlan(lines []string) (*plan, error) {
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "seeds: ") {
		return nil, fmt.Errorf("day05: missing seeds header")
	}

	var seeds []int64
	for _, f := range strings.Fields(lines[0][len("seeds: "):]) {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("day05: malformed seed %q: %w", f, err)
		}
		seeds = append(seeds, n)
	}

	maps := make(map[category]conversionMap)
	i := 2
	for i < len(lines) {
		header, _, _ := strings.Cut(lines[i], " ")
		rawSrc, rawDst, ok := strings.Cut(header, "-to-")
		if !ok {
			return nil, fmt.Errorf("day05: malformed map header %q", lines[i])
		}
		src, err := parseCategory(rawSrc)
		if err != nil {
			return nil, err
		}
		dst, err := parseCategory(rawDst)
		if err != nil {
			return nil, err
		}
		i++

		var mappings []mapping
		for i < len(lines) && lines[i] != "" {
			fields := strings.Fields(lines[i])
			if len(fields) != 3 {
				return nil, fmt.Errorf("day05: malformed mapping %q", lines[i])
			}
			var vals [3]int64
			for j, f := range fields {
				vals[j], err = strconv.ParseInt(f, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("day05: malformed mapping %q: %w", lines[i], err)
				}
			}
			mappings = append(mappings, mapping{DstStart: vals[0], SrcStart: vals[1], Length: vals[2]})
			i++
		}
		i++ // section separator

		maps[src] = conversionMap{Src: src, Dst: dst, Mappings: mappings}
	}

	return &plan{Seeds: seeds, Maps: maps}, nil
}
