package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/saturncore/internal/curated"
	"github.com/jetsetilly/saturncore/internal/prefs"
	"github.com/jetsetilly/saturncore/test"
)

func tmpPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "saturncore_prefs_test")
}

func TestBoolRoundTrip(t *testing.T) {
	fn := tmpPath(t)

	disk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, disk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, disk.Save())

	data, err := os.ReadFile(fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\ntest=true\n")

	var w prefs.Bool
	disk2, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, disk2.Add("test", &w))
	test.ExpectSuccess(t, disk2.Load())
	test.ExpectEquality(t, w.Get(), true)
}

func TestConfigurationDefaults(t *testing.T) {
	c, err := prefs.NewConfiguration(tmpPath(t))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.VideoStandard.Get(), "ntsc")
	test.ExpectEquality(t, c.ThreadedVDP.Get(), true)
}

func TestLoadMissingFileReportsPrefsNoFile(t *testing.T) {
	c, err := prefs.NewConfiguration(tmpPath(t))
	test.ExpectSuccess(t, err)
	err = c.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, curated.PrefsNoFile), true)
}
