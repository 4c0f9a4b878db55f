package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/saturncore/internal/curated"
)

// WarningBoilerPlate is written as a comment header on every saved prefs
// file, matching the teacher's prefs.WarningBoilerPlate convention
// (prefs_test.go asserts the saved file begins with it).
const WarningBoilerPlate = "; generated file: do not edit by hand"

// Disk is a named set of Values backed by a single dotfile, in the style of
// the teacher's prefs.Disk: fields are registered by name with Add, then
// Load/Save transfer them to and from the file as "key=value" lines.
type Disk struct {
	path    string
	entries map[string]Value
}

// NewDisk constructs a Disk backed by path. The file is not touched until
// Load or Save is called.
func NewDisk(path string) (*Disk, error) {
	return &Disk{path: path, entries: make(map[string]Value)}, nil
}

// Add registers v under key.
func (d *Disk) Add(key string, v Value) error {
	if _, exists := d.entries[key]; exists {
		return curated.Errorf(curated.PrefsError, fmt.Errorf("duplicate key %q", key))
	}
	d.entries[key] = v
	return nil
}

// Save writes every registered value to the backing file as "key=value"
// lines, sorted by key for a stable diff, preceded by WarningBoilerPlate.
func (d *Disk) Save() error {
	f, err := os.Create(d.path)
	if err != nil {
		return curated.Errorf(curated.PrefsError, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s\n", WarningBoilerPlate); err != nil {
		return curated.Errorf(curated.PrefsError, err)
	}

	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(f, "%s=%s\n", k, d.entries[k].String()); err != nil {
			return curated.Errorf(curated.PrefsError, err)
		}
	}
	return nil
}

// Load reads the backing file and applies each "key=value" line to its
// registered Value. Unknown keys are ignored; a missing file is reported as
// PrefsNoFile rather than a bare os.ErrNotExist so callers can tell apart
// "first run" from "broken install" (spec.md ambient error taxonomy).
func (d *Disk) Load() error {
	f, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return curated.Errorf(curated.PrefsNoFile, d.path)
		}
		return curated.Errorf(curated.PrefsError, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return curated.Errorf(curated.PrefsInvalid, d.path)
		}
		v, ok := d.entries[parts[0]]
		if !ok {
			continue
		}
		if err := v.Set(parts[1]); err != nil {
			return curated.Errorf(curated.PrefsInvalid, d.path)
		}
	}
	return sc.Err()
}
