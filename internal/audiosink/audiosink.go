// Package audiosink writes PCM sample buffers to WAV files via go-audio and
// decodes WAV/MP3 fixtures back into raw samples. The core itself has no
// audio model (out of scope per spec.md), so this package only exists at the
// boundary; no other package in this module calls it.
package audiosink

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// WriteWAV writes a 16-bit PCM buffer with the given channel count and
// sample rate to path.
func WriteWAV(path string, sampleRate, channels int, samples []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:   samples,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

// LoadWAVFixture decodes a WAV fixture into an int sample buffer.
func LoadWAVFixture(path string) (*audio.IntBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// LoadMP3Fixture decodes an MP3 fixture (used for larger CD-audio-style test
// clips than WAV fixtures are practical for) into raw little-endian 16-bit
// stereo PCM bytes.
func LoadMP3Fixture(path string) ([]byte, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, err
	}

	var out []byte
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		if n > 0 {
			out = append(out, chunk[:n]...)
		}
		if err != nil {
			break
		}
	}
	return out, dec.SampleRate(), nil
}
