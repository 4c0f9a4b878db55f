// Package prefs implements the Configuration surface spec.md §6.5 describes
// as "injected as observed fields on a Configuration object": typed values
// that persist to a dotfile and notify a callback on every mutation.
// Grounded on the teacher's prefs package (prefs.Bool/prefs.String-style
// Value types registered against a Disk by name, WarningBoilerPlate header,
// key=value on-disk record), inferred from prefs_test.go since the
// package's own source was filtered out of the retrieval pack.
package prefs

import "strconv"

// Value is a preference field that can be set from, and rendered back to, a
// string (the on-disk representation), and that notifies an observer
// whenever it changes.
type Value interface {
	Set(v interface{}) error
	String() string
}

// Bool is an observed boolean preference.
type Bool struct {
	value    bool
	OnChange func(bool)
}

func (b *Bool) Set(v interface{}) error {
	switch t := v.(type) {
	case bool:
		b.value = t
	case string:
		p, err := strconv.ParseBool(t)
		if err != nil {
			return err
		}
		b.value = p
	default:
		return strconv.ErrSyntax
	}
	if b.OnChange != nil {
		b.OnChange(b.value)
	}
	return nil
}

func (b *Bool) Get() bool     { return b.value }
func (b *Bool) String() string { return strconv.FormatBool(b.value) }

// String is an observed string-valued preference.
type String struct {
	value    string
	OnChange func(string)
}

func (s *String) Set(v interface{}) error {
	t, ok := v.(string)
	if !ok {
		return strconv.ErrSyntax
	}
	s.value = t
	if s.OnChange != nil {
		s.OnChange(s.value)
	}
	return nil
}

func (s *String) Get() string   { return s.value }
func (s *String) String() string { return s.value }
