package prefs

// Configuration is the Saturn core's observed-fields object (spec.md §6.5):
// values the surrounding system injects and the core consumes, persisted
// through a Disk the way the teacher's CLI persists its Configuration.
type Configuration struct {
	disk *Disk

	// system.videoStandard: switches NTSC/PAL timing tables (internal/raster).
	VideoStandard String

	// video.threadedVDP: enables the §4.5 two-goroutine render dispatcher.
	ThreadedVDP Bool

	// video.threadedDeinterlacer: spawns a second render helper thread for
	// interlaced output.
	ThreadedDeinterlacer Bool

	// video.includeVDP1InRenderThread: moves VDP1 command processing onto
	// the render thread instead of the emulation thread.
	IncludeVDP1InRenderThread Bool

	// audio.enabled: loaded and saved with the other settings. Nothing reads
	// it; internal/audiosink output is not gated by it.
	AudioEnabled Bool

	// log.verbosity: loaded and saved with the other settings. Nothing reads
	// it; internal/logger has no verbosity level and drops no entries by it.
	LogVerbosity String
}

// NewConfiguration constructs a Configuration backed by a dotfile at path,
// with every field registered and defaulted.
func NewConfiguration(path string) (*Configuration, error) {
	disk, err := NewDisk(path)
	if err != nil {
		return nil, err
	}

	c := &Configuration{disk: disk}
	c.VideoStandard.value = "ntsc"
	c.ThreadedVDP.value = true
	c.LogVerbosity.value = "info"

	fields := map[string]Value{
		"system.videoStandard":             &c.VideoStandard,
		"video.threadedVDP":                &c.ThreadedVDP,
		"video.threadedDeinterlacer":       &c.ThreadedDeinterlacer,
		"video.includeVDP1InRenderThread":  &c.IncludeVDP1InRenderThread,
		"audio.enabled":                    &c.AudioEnabled,
		"log.verbosity":                    &c.LogVerbosity,
	}
	for k, v := range fields {
		if err := disk.Add(k, v); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Load reads the configuration file, applying any saved values over the
// defaults set by NewConfiguration.
func (c *Configuration) Load() error { return c.disk.Load() }

// Save writes the current configuration to disk.
func (c *Configuration) Save() error { return c.disk.Save() }
