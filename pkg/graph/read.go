// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadEdges reads an edge list: one "u v" pair of integer vertex IDs per line.
// Fields after the second are ignored, as are blank lines and lines starting with '#' or '%'.
// Edges are returned in file order, duplicates included.
func ReadEdges(r io.Reader) ([]Edge, error) {
	var edges []Edge
	err := ScanEdges(r, func(e Edge) error { edges = append(edges, e); return nil })
	return edges, err
}

// ScanEdges calls f for each edge of an edge list as it is read, see [ReadEdges].
// Stops at the first error returned by f.
func ScanEdges(r io.Reader, f func(Edge) error) error {
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == '#' || line[0] == '%' {
			continue
		}
		e, err := parseEdge(strings.Fields(line))
		if err != nil {
			return fmt.Errorf("line %v: %w", n, err)
		}
		if err := f(e); err != nil {
			return err
		}
	}
	return s.Err()
}

// ReadFile reads an edge list file, see [ReadEdges].
func ReadFile(name string) ([]Edge, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	edges, err := ReadEdges(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", name, err)
	}
	return edges, nil
}

func parseEdge(fields []string) (e Edge, err error) {
	if len(fields) < 2 {
		return e, fmt.Errorf("expected two vertices, got %q", strings.Join(fields, " "))
	}
	if e.From, err = strconv.ParseInt(fields[0], 10, 64); err != nil {
		return e, err
	}
	if e.To, err = strconv.ParseInt(fields[1], 10, 64); err != nil {
		return e, err
	}
	if e.From == e.To {
		return e, fmt.Errorf("%w: %v", ErrSelfLoop, e)
	}
	return e, nil
}
