package snapshot_test

import (
	"testing"

	"github.com/jetsetilly/saturncore/internal/snapshot"
	"github.com/jetsetilly/saturncore/test"
)

func TestSnapshotCrunchesAndDataDecrunches(t *testing.T) {
	buf := snapshot.New(64)
	data := *buf.Data()
	for i := range data {
		data[i] = byte(i)
	}

	snap := buf.Snapshot()
	test.ExpectEquality(t, snap.IsCrunched(), true)

	uncrunched, _ := snap.Size()
	test.ExpectEquality(t, uncrunched, 64)

	got := *snap.Data()
	test.ExpectEquality(t, len(got), 64)
	test.ExpectEquality(t, snap.IsCrunched(), false)
	for i := range got {
		test.ExpectEquality(t, got[i], byte(i))
	}
}

func TestSnapshotOriginalBufferUntouched(t *testing.T) {
	buf := snapshot.New(8)
	data := *buf.Data()
	data[0] = 0xff

	_ = buf.Snapshot()
	test.ExpectEquality(t, buf.IsCrunched(), false)
	test.ExpectEquality(t, (*buf.Data())[0], byte(0xff))
}

func TestNewClampsMinimumSize(t *testing.T) {
	buf := snapshot.New(0)
	uncrunched, current := buf.Size()
	test.ExpectEquality(t, uncrunched, 4)
	test.ExpectEquality(t, current, 4)
}
