// Package savestate implements the save-state session ledger described in
// spec.md §3.5 and §6.4: a numbered set of save slots, each recording a
// compressed state buffer and the SHA-1 hash it was saved with, so that a
// later load can detect silent corruption before it reaches the emulated
// core. Grounded on the teacher's database package (Session: a sorted,
// key-ordered set of entries with a CSV-style on-disk record;
// NumEntries/SortedKeyList/List), adapted from "cartridge metadata records"
// to "save-state slots", and on internal/digest + internal/snapshot for the
// hash and compression concerns the teacher's database package left to
// other packages.
package savestate

import (
	"fmt"
	"io"
	"sort"

	"github.com/jetsetilly/saturncore/internal/curated"
	"github.com/jetsetilly/saturncore/internal/digest"
	"github.com/jetsetilly/saturncore/internal/snapshot"
)

// Entry is one save slot: a compressed state buffer plus the hash it was
// written with.
type Entry struct {
	Label string
	Hash  string
	State *snapshot.Buffer
}

// Session is an in-memory ledger of save-state slots, keyed by slot number
// (spec.md §6.4: "a small, numbered set of save slots").
type Session struct {
	entries map[int]*Entry
}

// NewSession constructs an empty ledger.
func NewSession() *Session {
	return &Session{entries: make(map[int]*Entry)}
}

// NumEntries returns the number of occupied slots.
func (s *Session) NumEntries() int { return len(s.entries) }

// SortedKeyList returns the occupied slot numbers in ascending order.
func (s *Session) SortedKeyList() []int {
	keys := make([]int, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Save compresses state and records it (with its digest) at slot, replacing
// whatever was there. state is the raw, uncompressed state record (spec.md
// §6.4's VRAM/CRAM/register/CPU-register snapshot, serialised by the
// caller).
func (s *Session) Save(slot int, label string, state []byte) {
	d := digest.NewFrame(0, 0)
	// a state record isn't a video frame, but Frame.Add's chained-SHA1
	// accumulator works over any byte buffer; reuse it rather than
	// duplicating the hashing logic.
	d.Add(state)

	buf := snapshot.New(len(state))
	copy(*buf.Data(), state)

	s.entries[slot] = &Entry{
		Label: label,
		Hash:  d.Hash(),
		State: buf.Snapshot(),
	}
}

// Load decompresses and returns the state previously saved at slot,
// verifying its digest still matches what was recorded at save time
// (spec.md §8: a load whose stored hash does not match its decompressed
// payload is a corrupt record, not silently accepted).
func (s *Session) Load(slot int) ([]byte, error) {
	e, ok := s.entries[slot]
	if !ok {
		return nil, curated.Errorf(curated.DatabaseKeyError, slot)
	}

	data := *e.State.Data()

	d := digest.NewFrame(0, 0)
	d.Add(data)
	if d.Hash() != e.Hash {
		return nil, curated.Errorf(curated.SaveStateMismatch, e.Label)
	}

	return data, nil
}

// List writes the ledger's entries, in slot order, to output.
func (s *Session) List(output io.Writer) error {
	if s.NumEntries() == 0 {
		_, err := output.Write([]byte("savestate: no slots in use\n"))
		return err
	}

	for _, k := range s.SortedKeyList() {
		e := s.entries[k]
		if _, err := fmt.Fprintf(output, "%03d %s (%s)\n", k, e.Label, e.Hash); err != nil {
			return err
		}
	}
	return nil
}
