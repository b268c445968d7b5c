// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// Package logging holds the root logger of the tesseract packages.
//
// Verbosity starts from $TESSERACT_VERBOSE and can be raised by [Init].
// Exploration traces steps at V(3), gin request logs use V(2) to V(5).
package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

const verboseEnv = "TESSERACT_VERBOSE"

var root = stdr.New(log.New(os.Stderr, "tesseract ", log.Ltime))

func init() {
	if n, err := strconv.Atoi(os.Getenv(verboseEnv)); err == nil {
		stdr.SetVerbosity(n)
	}
}

// Log returns the root logger.
func Log() logr.Logger { return root }

// Init sets the verbosity of the root logger. Zero keeps the verbosity from the environment.
func Init(verbosity int) {
	if verbosity != 0 {
		stdr.SetVerbosity(verbosity)
	}
}

// Writer logs each non-blank line written to it at verbosity v.
func Writer(v int) io.Writer { return lineWriter(v) }

type lineWriter int

func (w lineWriter) Write(b []byte) (int, error) {
	for line := range strings.Lines(string(b)) {
		if line = strings.TrimSpace(line); line != "" {
			root.V(int(w)).Info(line)
		}
	}
	return len(b), nil
}

// JSON defers marshaling v until it is logged, so disabled log levels cost nothing.
func JSON(v any) logr.Marshaler { return jsonValue{v} }

type jsonValue struct{ v any }

func (j jsonValue) MarshalLog() any {
	b, err := json.Marshal(j.v)
	if err != nil {
		return err.Error()
	}
	return string(b)
}
