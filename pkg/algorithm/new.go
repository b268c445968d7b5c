// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package algorithm

import (
	"errors"
	"fmt"

	"github.com/tesseract-graph/tesseract/pkg/plan"
)

// Names of the algorithms that [New] can create.
var Names = []string{"clique", "collect", "common", "count", "cycle", "tree"}

// ErrUnknown is returned by New for an unknown algorithm name.
var ErrUnknown = errors.New("unknown algorithm")

// ErrStrategy is returned for an algorithm that gives wrong results with a strategy.
var ErrStrategy = errors.New("algorithm does not support strategy")

// CheckStrategy returns an error wrapping [ErrStrategy] if the named algorithm cannot run with s.
// Backward growth never visits the matching orders where a new edge joins a leaf, so count requires middle-out updates.
func CheckStrategy(name string, s Strategy) error {
	if name == "count" && s == Backward {
		return fmt.Errorf("%w: %v with %v", ErrStrategy, name, s)
	}
	return nil
}

// Check is [CheckStrategy] for the algorithm a.
func Check(a Algorithm, s Strategy) error {
	if _, ok := a.(*Count); ok {
		return CheckStrategy("count", s)
	}
	return nil
}

// New creates the named algorithm reporting to out.
// max limits candidate size, 0 means unbounded. The count algorithm requires a plan and ignores max.
func New(name string, out Sink, max int, p *plan.Plan) (Algorithm, error) {
	switch name {
	case "clique":
		return NewClique(out, max), nil
	case "collect":
		return NewCollect(out, max), nil
	case "common":
		return NewCommonNeighbour(out), nil
	case "cycle":
		return NewCycle(out, max), nil
	case "tree":
		return NewTree(out, max), nil
	case "count":
		if p == nil {
			return nil, fmt.Errorf("%v: requires a pattern", name)
		}
		return NewCount(out, p)
	default:
		return nil, fmt.Errorf("%w: %q, expected one of %v", ErrUnknown, name, Names)
	}
}
