// Package snapshot implements lazily-decompressed state buffers for the
// save-state system (spec.md §3.5, §6.4). Grounded on the teacher's
// crunched package (the Data interface: IsCrunched/Size/Data/Snapshot, and
// the idea of keeping many in-memory rewind points cheap by storing them
// compressed until actually needed), but backed by
// github.com/klauspost/compress/flate rather than the teacher's hand-rolled
// run-length scheme, since a real compressor is available in the ecosystem
// and handles VRAM/CRAM's less regular content far better than RLE.
package snapshot

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

// Buffer is a block of state (a VDP1/VDP2 VRAM image, a save-state record)
// that can be held compressed and decompressed on demand.
type Buffer struct {
	crunched       bool
	data           []byte
	uncrunchedSize int
}

// New allocates an uncrunched buffer of the given size.
func New(size int) *Buffer {
	if size < 4 {
		size = 4
	}
	return &Buffer{data: make([]byte, size), uncrunchedSize: size}
}

// IsCrunched reports whether the buffer currently holds compressed data.
func (b *Buffer) IsCrunched() bool { return b.crunched }

// Size returns the uncrunched size and the buffer's current (possibly
// compressed) size.
func (b *Buffer) Size() (uncrunched, current int) { return b.uncrunchedSize, len(b.data) }

// Data returns a pointer to the uncrunched data, decompressing in place if
// necessary.
func (b *Buffer) Data() *[]byte {
	if b.crunched {
		r := flate.NewReader(bytes.NewReader(b.data))
		defer r.Close()
		out := make([]byte, b.uncrunchedSize)
		io.ReadFull(r, out)
		b.data = out
		b.crunched = false
	}
	return &b.data
}

// Snapshot returns a new, independent Buffer holding a compressed copy of
// the current data. The original buffer is left uncrunched (it is
// decompressed first if it was crunched) and its contents are unchanged.
func (b *Buffer) Snapshot() *Buffer {
	var out bytes.Buffer
	w, _ := flate.NewWriter(&out, flate.DefaultCompression)
	w.Write(*b.Data())
	w.Close()

	return &Buffer{
		crunched:       true,
		data:           out.Bytes(),
		uncrunchedSize: b.uncrunchedSize,
	}
}
