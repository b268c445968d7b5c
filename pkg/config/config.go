// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// Package config loads tesseract configuration files.
//
// Configuration files may be JSON or YAML, and may include other files or URLs.
package config

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/tesseract-graph/tesseract/internal/pkg/logging"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/plan"
	"github.com/tesseract-graph/tesseract/pkg/ptr"
	"github.com/tesseract-graph/tesseract/pkg/unique"
)

var log = logging.Log()

// Config for a mining run.
type Config struct {
	// Graph is an edge list file, relative to the file containing the configuration.
	Graph string `json:"graph,omitempty"`

	// Strategy is the exploration strategy: forward, backward or middleout.
	Strategy string `json:"strategy,omitempty" validate:"omitempty,oneof=forward backward middleout"`

	// Algorithm names the pattern algorithm.
	Algorithm string `json:"algorithm,omitempty" validate:"omitempty,oneof=clique collect common count cycle tree"`

	// Max limits candidate size, 0 means no limit.
	Max int `json:"max,omitempty" validate:"gte=0"`

	// Pattern names the pattern counted by the count algorithm, a built-in or one of Patterns.
	Pattern string `json:"pattern,omitempty"`

	// Patterns defines additional patterns.
	Patterns []plan.Pattern `json:"patterns,omitempty" validate:"dive"`

	// KeepEdges keeps streamed edges in the graph, otherwise each edge is explored hypothetically.
	KeepEdges *bool `json:"keepEdges,omitempty"`

	// Verify reports matches found more than once.
	Verify bool `json:"verify,omitempty"`

	// Include lists additional configuration files or URLs to include.
	Include []string `json:"include,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate the configuration.
func (c *Config) Validate() error {
	var errs unique.Errors
	if err := validate.Struct(c); err != nil {
		errs.Add(err)
	}
	names := unique.Set[string]{}
	for _, p := range c.Patterns {
		if names.Has(p.Name) {
			errs.Addf("duplicate pattern: %v", p.Name)
		}
		names.Add(p.Name)
		errs.Add(p.Validate())
	}
	if c.Algorithm == "count" && c.Pattern == "" {
		errs.Addf("algorithm count requires a pattern")
	}
	errs.Add(algorithm.CheckStrategy(c.Algorithm, algorithm.Strategy(c.Strategy)))
	if c.Pattern != "" {
		if _, err := c.lookup(c.Pattern); err != nil {
			errs.Add(err)
		}
	}
	return errs.Err()
}

// Keep returns the KeepEdges setting, true if unset.
func (c *Config) Keep() bool { return ptr.ValueOr(c.KeepEdges, true) }

// Plan builds the matching-order plan for the configured pattern, nil if there is no pattern.
func (c *Config) Plan() (*plan.Plan, error) {
	if c.Pattern == "" {
		return nil, nil
	}
	p, err := c.lookup(c.Pattern)
	if err != nil {
		return nil, err
	}
	return plan.Build(p)
}

func (c *Config) lookup(name string) (plan.Pattern, error) {
	if i := slices.IndexFunc(c.Patterns, func(p plan.Pattern) bool { return p.Name == name }); i >= 0 {
		return c.Patterns[i], nil
	}
	if p, ok := plan.Builtin(name); ok {
		return p, nil
	}
	return plan.Pattern{}, fmt.Errorf("pattern not found: %v", name)
}
