package tzif

import (
	"bytes"
	"slices"
)

// Header returns the decoded header.
func (f *File) Header() Header {
	return f.header
}

// RawTransitions returns the transitions as stored, with unresolved type indices.
func (f *File) RawTransitions() []Transition {
	return slices.Clone(f.transitions)
}

// LocalTimeTypes returns the local time type records as stored.
func (f *File) LocalTimeTypes() []LocalTimeTypeRecord {
	return slices.Clone(f.types)
}

// Designations returns the raw time zone designation octets.
func (f *File) Designations() []byte {
	return bytes.Clone(f.designations)
}

// LeapSeconds returns the leap-second records.
func (f *File) LeapSeconds() []LeapSecondRecord {
	return slices.Clone(f.leaps)
}

// StandardWallIndicators returns the standard/wall indicators. They are
// reported as decoded; transition times are never adjusted by them.
func (f *File) StandardWallIndicators() []bool {
	return slices.Clone(f.isstd)
}

// UTLocalIndicators returns the UT/local indicators. Like the
// standard/wall indicators they are not applied to transition times.
func (f *File) UTLocalIndicators() []bool {
	return slices.Clone(f.isut)
}

// Trailing returns the number of octets left after the version 1 data block.
func (f *File) Trailing() int {
	return f.trailing
}

// Abbreviation returns the NUL-terminated designation starting at octet
// idx of the designation table. A designation missing its terminator runs
// to the end of the table.
func (f *File) Abbreviation(idx int) (string, error) {
	if idx < 0 || idx >= len(f.designations) {
		return "", &IndexError{Table: "time zone designations", Index: idx, Len: len(f.designations)}
	}
	s := f.designations[idx:]
	if i := bytes.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return string(s), nil
}

// MaxAbbreviationLength returns the length of the longest designation in
// the table, counting every NUL-separated string whether or not a local
// time type refers to it.
func (f *File) MaxAbbreviationLength() int {
	var n int
	for _, s := range bytes.Split(f.designations, []byte{0}) {
		n = max(n, len(s))
	}
	return n
}

// Types returns the local time types with their designations resolved,
// in file order. The result is computed once and shared between calls;
// callers must not modify it.
func (f *File) Types() ([]Zone, error) {
	return f.zones()
}

func (f *File) resolveZones() ([]Zone, error) {
	zones := make([]Zone, len(f.types))
	for i, t := range f.types {
		abbr, err := f.Abbreviation(int(t.Idx))
		if err != nil {
			return nil, err
		}
		zones[i] = Zone{
			Offset:       int(t.Utoff),
			IsDST:        t.Dst,
			Abbreviation: abbr,
		}
	}
	return zones, nil
}

// Transitions returns a scanner over the transitions joined with their
// zones. Each call starts a new pass.
//
//	s := f.Transitions()
//	for s.Scan() {
//		zt := s.Transition()
//		...
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
func (f *File) Transitions() *TransitionScanner {
	return &TransitionScanner{f: f}
}

// ZoneTransitions collects every transition joined with its zone.
func (f *File) ZoneTransitions() ([]ZoneTransition, error) {
	var out []ZoneTransition
	s := f.Transitions()
	for s.Scan() {
		out = append(out, s.Transition())
	}
	return out, s.Err()
}

// TransitionScanner resolves transitions one at a time.
// It stops at the first transition whose type index is out of range.
type TransitionScanner struct {
	f     *File
	zones []Zone
	next  int
	cur   ZoneTransition
	err   error
}

// Scan advances to the next transition. It returns false when there are
// no more transitions or an error occurred.
func (s *TransitionScanner) Scan() bool {
	if s.err != nil || s.next >= len(s.f.transitions) {
		return false
	}
	if s.zones == nil {
		s.zones, s.err = s.f.Types()
		if s.err != nil {
			return false
		}
	}
	t := s.f.transitions[s.next]
	if int(t.Type) >= len(s.zones) {
		s.err = &IndexError{Table: "local time types", Index: int(t.Type), Len: len(s.zones)}
		return false
	}
	s.cur = ZoneTransition{Time: int64(t.Time), Zone: s.zones[t.Type]}
	s.next++
	return true
}

// Transition returns the transition read by the last successful Scan.
func (s *TransitionScanner) Transition() ZoneTransition {
	return s.cur
}

// Err returns the error that stopped the scan, if any.
func (s *TransitionScanner) Err() error {
	return s.err
}
