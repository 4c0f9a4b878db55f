// Package curated implements the core's error taxonomy (see spec.md §7). A
// curated error wraps a pattern string and its substitution values rather
// than an already-formatted message, so that callers can test the identity
// of an error chain with Is()/Has() without string-matching formatted text.
package curated

import (
	"fmt"
	"strings"
)

type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error. Unlike fmt.Errorf the first argument is
// named "pattern" rather than "format": the pattern is retained unformatted
// so that Is() and Has() can compare against it directly.
func Errorf(pattern string, values ...interface{}) error {
	return curated{pattern: pattern, values: values}
}

// Error returns the normalised error message. Normalisation removes
// duplicate adjacent message parts that arise from wrapping one curated
// error inside another.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}

// IsAny reports whether err is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is reports whether err is a curated error built from the given pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has reports whether pattern appears anywhere in the curated error chain.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}
	if !IsAny(err) {
		return false
	}
	if Is(err, pattern) {
		return true
	}
	for _, v := range err.(curated).values {
		if e, ok := v.(curated); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}
	return false
}
