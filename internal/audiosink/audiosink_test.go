package audiosink_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/saturncore/internal/audiosink"
	"github.com/jetsetilly/saturncore/test"
)

func TestWriteAndLoadWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.wav")
	samples := []int{0, 1000, -1000, 30000, -30000, 0}

	err := audiosink.WriteWAV(path, 44100, 1, samples)
	test.ExpectSuccess(t, err)

	buf, err := audiosink.LoadWAVFixture(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, buf.Format.SampleRate, 44100)
	test.ExpectEquality(t, buf.Format.NumChannels, 1)
	test.ExpectEquality(t, buf.Data, samples)
}
