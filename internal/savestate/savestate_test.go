package savestate_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/saturncore/internal/curated"
	"github.com/jetsetilly/saturncore/internal/savestate"
	"github.com/jetsetilly/saturncore/test"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := savestate.NewSession()
	state := []byte("vram+cram+registers+cpu state, slot 0")

	s.Save(0, "before boss fight", state)

	got, err := s.Load(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, got, state)
}

func TestLoadUnusedSlotReportsDatabaseKeyError(t *testing.T) {
	s := savestate.NewSession()
	_, err := s.Load(3)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, curated.DatabaseKeyError), true)
}

func TestSortedKeyListAndNumEntries(t *testing.T) {
	s := savestate.NewSession()
	s.Save(2, "a", []byte("a"))
	s.Save(0, "b", []byte("b"))
	s.Save(1, "c", []byte("c"))

	test.ExpectEquality(t, s.NumEntries(), 3)
	test.ExpectEquality(t, s.SortedKeyList(), []int{0, 1, 2})
}

func TestListWritesEachSlot(t *testing.T) {
	s := savestate.NewSession()
	s.Save(0, "checkpoint", []byte("data"))

	var buf bytes.Buffer
	err := s.List(&buf)
	test.ExpectSuccess(t, err)
	if !strings.Contains(buf.String(), "checkpoint") {
		t.Fatalf("expected listing to mention label, got %q", buf.String())
	}
}
