// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// package must turns errors into panics for command-line code that cannot continue.
//
// The tesseract command recovers these panics in main and prints them as errors.
package must

import (
	"fmt"
)

// Must panics with err if it is not nil.
// With a format, the panic value wraps err as fmt.Errorf(format+": %w", args..., err).
func Must(err error, format ...any) {
	if err == nil {
		return
	}
	if len(format) > 0 {
		err = fmt.Errorf(format[0].(string)+": %w", append(format[1:], err)...)
	}
	panic(err)
}

// Must1 calls Must(err), then returns v.
func Must1[T any](v T, err error) T { Must(err); return v }

// Check panics with fmt.Errorf(format, args...) if ok is false.
func Check(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Errorf(format, args...))
	}
}
