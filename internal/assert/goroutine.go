// Package assert contains small runtime assertions used to document and
// check the single-writer/single-reader discipline demanded by spec.md §5.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier that is different between goroutines and
// stable for a given goroutine. It exists only to support debugging and
// testing assertions such as Owner below, never production control
// flow.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that is expected to be the sole accessor of
// some piece of state, and can assert that later calls happen on the same
// goroutine.
type Owner struct {
	id uint64
	ok bool
}

// Bind records the calling goroutine as the owner.
func (o *Owner) Bind() {
	o.id = GoroutineID()
	o.ok = true
}

// IsOwner reports whether the calling goroutine is the bound owner. Returns
// true if no owner has been bound yet.
func (o *Owner) IsOwner() bool {
	if !o.ok {
		return true
	}
	return GoroutineID() == o.id
}
