// SPDX-License-Identifier: MIT

package generate

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// New returns the generator for alg configured with opts.
//
// Errors:
//   - ErrUnknownAlgorithm if alg is not one of Algorithms().
func New(alg Algorithm, opts ...Option) (maze.Generator, error) {
	switch alg {
	case DepthFirstSearch:
		return NewDepthFirst(opts...), nil
	case Kruskal:
		return NewKruskal(opts...), nil
	case Prim:
		return NewPrim(opts...), nil
	case Wilson:
		return NewWilson(opts...), nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}

// NewByName is New(ParseAlgorithm(name)).
func NewByName(name string, opts ...Option) (maze.Generator, error) {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}

	return New(alg, opts...)
}
