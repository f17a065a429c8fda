package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrMalformedBlueprint is returned for a record that does not describe
	// six positive costs.
	ErrMalformedBlueprint = errors.New("malformed blueprint")
	// ErrNoBlueprints is returned when an input holds no records at all.
	ErrNoBlueprints = errors.New("no blueprints in input")
)

var intRx = regexp.MustCompile(`-?\d+`)

// ParseBlueprints reads one blueprint per non-empty line. A line may carry a
// "Blueprint N:" prefix, in which case N is its ID; otherwise the ID is the
// 1-based record position.
func ParseBlueprints(r io.Reader) ([]Blueprint, error) {
	var bps []Blueprint
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		bp, err := parseLine(line, len(bps)+1)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		bps = append(bps, bp)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(bps) == 0 {
		return nil, ErrNoBlueprints
	}
	return bps, nil
}

func parseLine(line string, pos int) (Blueprint, error) {
	var nums []int
	for _, m := range intRx.FindAllString(line, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			return Blueprint{}, fmt.Errorf("%w: %v", ErrMalformedBlueprint, err)
		}
		nums = append(nums, n)
	}

	id := pos
	if strings.HasPrefix(line, "Blueprint") {
		if len(nums) == 0 {
			return Blueprint{}, fmt.Errorf("%w: missing id", ErrMalformedBlueprint)
		}
		id, nums = nums[0], nums[1:]
	}
	if len(nums) != 6 {
		return Blueprint{}, fmt.Errorf("%w: want 6 costs, got %d", ErrMalformedBlueprint, len(nums))
	}
	return newCheckedBlueprint(id, nums)
}

func newCheckedBlueprint(id int, c []int) (Blueprint, error) {
	for _, n := range c {
		if n <= 0 {
			return Blueprint{}, fmt.Errorf("%w: cost %d is not positive", ErrMalformedBlueprint, n)
		}
	}
	return NewBlueprint(id, c[0], c[1], c[2], c[3], c[4], c[5]), nil
}

// ParseBlueprintsJSON reads a document of the form
//
//	{"blueprints": [{"id": 1, "ore": 4, "clay": 2,
//	  "obsidian": {"ore": 3, "clay": 14}, "geode": {"ore": 2, "obsidian": 7}}]}
//
// A missing id defaults to the 1-based array position.
func ParseBlueprintsJSON(data []byte) ([]Blueprint, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedBlueprint)
	}
	list := gjson.GetBytes(data, "blueprints")
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: missing blueprints array", ErrMalformedBlueprint)
	}

	var bps []Blueprint
	for i, v := range list.Array() {
		id := i + 1
		if idv := v.Get("id"); idv.Exists() {
			id = int(idv.Int())
		}
		costs := make([]int, 0, 6)
		for _, path := range []string{"ore", "clay", "obsidian.ore", "obsidian.clay", "geode.ore", "geode.obsidian"} {
			f := v.Get(path)
			if f.Type != gjson.Number {
				return nil, fmt.Errorf("blueprint %d: %w: %s is not a number", i+1, ErrMalformedBlueprint, path)
			}
			costs = append(costs, int(f.Int()))
		}
		bp, err := newCheckedBlueprint(id, costs)
		if err != nil {
			return nil, fmt.Errorf("blueprint %d: %w", i+1, err)
		}
		bps = append(bps, bp)
	}
	if len(bps) == 0 {
		return nil, ErrNoBlueprints
	}
	return bps, nil
}
