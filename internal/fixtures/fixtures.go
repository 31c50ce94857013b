// Package fixtures loads the lesson demo tables embedded in fixtures.yaml.
package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvldsa/core"
	"github.com/katalvlaran/lvldsa/dp"
)

//go:embed fixtures.yaml
var embedded []byte

// ErrInvalidFixture indicates a malformed fixture entry.
var ErrInvalidFixture = errors.New("fixtures: invalid fixture")

// SearchCase is one (input, target) pair for the search lesson.
type SearchCase struct {
	Name   string `yaml:"name"`
	Input  []int  `yaml:"input"`
	Target int    `yaml:"target"`
}

// TreeCase is a binary tree written in tuple notation.
type TreeCase struct {
	Name  string `yaml:"name"`
	Tuple string `yaml:"tuple"`
}

// KnapsackCase is a 0/1 knapsack instance.
type KnapsackCase struct {
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
	Weights  []int  `yaml:"weights"`
	Values   []int  `yaml:"values"`
}

// Items converts the parallel slices into dp items.
func (k KnapsackCase) Items() ([]dp.Item, error) {
	return dp.Items(k.Weights, k.Values)
}

// GraphCase is an edge list; each edge is [from, to] or [from, to, weight].
type GraphCase struct {
	Name     string     `yaml:"name"`
	Directed bool       `yaml:"directed"`
	Weighted bool       `yaml:"weighted"`
	Edges    [][]string `yaml:"edges"`
}

// Build constructs the core.Graph described by the case.
func (c GraphCase) Build() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(c.Directed)}
	if c.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for i, e := range c.Edges {
		var w int64
		switch len(e) {
		case 2:
		case 3:
			v, err := strconv.ParseInt(e[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s edge %d weight %q", ErrInvalidFixture, c.Name, i, e[2])
			}
			w = v
		default:
			return nil, fmt.Errorf("%w: %s edge %d has %d fields", ErrInvalidFixture, c.Name, i, len(e))
		}
		if _, err := g.AddEdge(e[0], e[1], w); err != nil {
			return nil, fmt.Errorf("%s edge %d: %w", c.Name, i, err)
		}
	}

	return g, nil
}

// Set is the full fixture document.
type Set struct {
	Search   []SearchCase   `yaml:"search"`
	Trees    []TreeCase     `yaml:"trees"`
	Knapsack []KnapsackCase `yaml:"knapsack"`
	Graphs   []GraphCase    `yaml:"graphs"`
}

// Graph returns the graph case with the given name.
func (s *Set) Graph(name string) (GraphCase, bool) {
	for _, g := range s.Graphs {
		if g.Name == name {
			return g, true
		}
	}

	return GraphCase{}, false
}

// Load parses the embedded fixtures.
func Load() (*Set, error) {
	return Parse(embedded)
}

// Parse decodes and validates a fixture document.
func Parse(data []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Set) validate() error {
	for i, c := range s.Search {
		if c.Name == "" {
			return fmt.Errorf("%w: search case %d has no name", ErrInvalidFixture, i)
		}
	}
	for i, c := range s.Trees {
		if c.Name == "" || c.Tuple == "" {
			return fmt.Errorf("%w: tree case %d needs name and tuple", ErrInvalidFixture, i)
		}
	}
	for _, c := range s.Knapsack {
		if len(c.Weights) != len(c.Values) {
			return fmt.Errorf("%w: knapsack %q: %d weights, %d values",
				ErrInvalidFixture, c.Name, len(c.Weights), len(c.Values))
		}
	}

	return nil
}
