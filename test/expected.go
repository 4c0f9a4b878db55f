// Package test provides small assertion helpers used across this module's
// _test.go files, grounded on the teacher's top-level test package. It
// intentionally mirrors the teacher's naming rather than introducing a
// third-party assertion library for this layer.
package test

import (
	"math"
	"reflect"
	"testing"
)

// success is satisfied by booleans that are true, and by nil errors.
func success(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		return false
	}
}

// ExpectFailure asserts that value represents failure (false, or a non-nil error).
func ExpectFailure(t *testing.T, value interface{}) {
	t.Helper()
	if success(value) {
		t.Errorf("expected failure, got success (%v)", value)
	}
}

// ExpectSuccess asserts that value represents success (true, or a nil error).
func ExpectSuccess(t *testing.T, value interface{}) {
	t.Helper()
	if !success(value) {
		t.Errorf("expected success, got failure (%v)", value)
	}
}

// Equate is a shorthand equivalent to ExpectEquality for boolean and simple
// comparable values, kept for parity with the teacher's idiom of asserting a
// pre-computed comparison result.
func Equate(t *testing.T, a, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("not equal: %v != %v", a, b)
	}
}

// ExpectEquality asserts that a and b are deeply equal.
func ExpectEquality(t *testing.T, a, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected equality: %v != %v", a, b)
	}
}

// ExpectInequality asserts that a and b are not deeply equal.
func ExpectInequality(t *testing.T, a, b interface{}) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Errorf("expected inequality: %v == %v", a, b)
	}
}

// ExpectApproximate asserts that a and b differ by no more than tolerance,
// expressed as a proportion of b.
func ExpectApproximate(t *testing.T, a, b float64, tolerance float64) {
	t.Helper()
	if b == 0 {
		if math.Abs(a) > tolerance {
			t.Errorf("expected approximate equality: %v !~ %v", a, b)
		}
		return
	}
	if math.Abs((a-b)/b) > tolerance {
		t.Errorf("expected approximate equality: %v !~ %v", a, b)
	}
}
