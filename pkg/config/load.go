// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package config

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"

	"sigs.k8s.io/yaml"
)

// Configs is a map of configurations by their source file/url.
type Configs map[string]*Config

// Load loads a configuration from a file or URL, and all the configurations it includes.
// Relative paths in Include are relative to the location of the file containing them.
func Load(fileOrURL string) (Configs, error) {
	configs := Configs{}
	return configs, load(fileOrURL, configs)
}

func load(source string, configs Configs) error {
	if _, ok := configs[source]; ok {
		return nil // Already loaded
	}
	b, err := readFileOrURL(source)
	if err != nil {
		return fmt.Errorf("%v: %w", source, err)
	}
	c := &Config{}
	if err := yaml.UnmarshalStrict(b, c); err != nil {
		return fmt.Errorf("%v: %w", source, err)
	}
	if c.Graph != "" {
		c.Graph = resolve(source, c.Graph)
	}
	configs[source] = c
	log.V(2).Info("Loaded configuration", "source", source)
	for _, s := range c.Include {
		if err := load(resolve(source, s), configs); err != nil {
			return err
		}
	}
	return nil
}

// Merge combines the configurations into one, settings in the root configuration take precedence.
// Other configurations fill unset values in source order, patterns are collected from all configurations.
func (configs Configs) Merge(root string) (*Config, error) {
	r, ok := configs[root]
	if !ok {
		return nil, fmt.Errorf("configuration not loaded: %v", root)
	}
	merged := *r
	merged.Patterns = slices.Clone(r.Patterns)
	merged.Include = nil
	for _, source := range slices.Sorted(maps.Keys(configs)) {
		if source == root {
			continue
		}
		c := configs[source]
		merged.Graph = cmp.Or(merged.Graph, c.Graph)
		merged.Strategy = cmp.Or(merged.Strategy, c.Strategy)
		merged.Algorithm = cmp.Or(merged.Algorithm, c.Algorithm)
		merged.Pattern = cmp.Or(merged.Pattern, c.Pattern)
		merged.Max = cmp.Or(merged.Max, c.Max)
		if merged.KeepEdges == nil {
			merged.KeepEdges = c.KeepEdges
		}
		merged.Verify = merged.Verify || c.Verify
		merged.Patterns = append(merged.Patterns, c.Patterns...)
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", root, err)
	}
	return &merged, nil
}

func readFileOrURL(source string) ([]byte, error) {
	u, err := url.Parse(source)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return os.ReadFile(u.Path)
	}
	resp, err := http.Get(u.String())
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		return nil, errors.New(resp.Status)
	}
	return b, nil
}

func resolve(base, ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	if r, err := url.Parse(ref); err == nil {
		if r.IsAbs() {
			return ref
		}
		if b, err := url.Parse(base); err == nil && b.IsAbs() {
			return b.ResolveReference(r).String()
		}
	}
	return filepath.Join(filepath.Dir(base), ref)
}
