// SPDX-License-Identifier: MIT

package generate

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrUnknownAlgorithm is returned for an unrecognised algorithm name or value.
	ErrUnknownAlgorithm = errors.New("generate: unknown algorithm")

	// ErrNilMaze is returned when Generate is called with a nil maze.
	ErrNilMaze = errors.New("generate: nil maze")
)

// Algorithm enumerates the available generators.
type Algorithm uint8

const (
	// DepthFirstSearch is the randomized recursive backtracker.
	DepthFirstSearch Algorithm = iota
	// Kruskal is randomized Kruskal's algorithm.
	Kruskal
	// Prim is the growing-tree variant of Prim's algorithm.
	Prim
	// Wilson is Wilson's loop-erased random walk.
	Wilson
)

var algorithmNames = [...]string{
	DepthFirstSearch: "dfs",
	Kruskal:          "kruskal",
	Prim:             "prim",
	Wilson:           "wilson",
}

// String returns the short algorithm name used on command lines.
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}

	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{DepthFirstSearch, Kruskal, Prim, Wilson}
}

// ParseAlgorithm maps a case-insensitive name ("dfs", "kruskal", "prim",
// "wilson") to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if int(a) >= len(algorithmNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}
