package tzif

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"k8s.io/klog/v2"
)

// File is a decoded version 1 TZif file.
// A File is immutable and safe for concurrent use.
type File struct {
	header       Header
	transitions  []Transition
	types        []LocalTimeTypeRecord
	designations []byte
	leaps        []LeapSecondRecord
	isstd        []bool
	isut         []bool
	trailing     int

	zones func() ([]Zone, error)
}

// Option configures decoding.
type Option func(*options)

type options struct {
	extended bool
}

// WithExtendedVersions makes the decoder accept version 2+ files by
// decoding their leading version 1 data block. The 64-bit block and the
// footer are left unread and counted in File.Trailing.
func WithExtendedVersions() Option {
	return func(o *options) {
		o.extended = true
	}
}

// Decode decodes a TZif file from b.
// On error no File is returned.
func Decode(b []byte, opts ...Option) (*File, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := newReader("file", b)
	h, err := readHeader(r)
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if h.Version != V1 && !o.extended {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedVersion, h.Version)
	}

	f := &File{header: h}
	if f.transitions, err = readTransitions(r, h); err != nil {
		return nil, fmt.Errorf("read transitions: %w", err)
	}
	if f.types, err = readLocalTimeTypes(r, h); err != nil {
		return nil, fmt.Errorf("read local time types: %w", err)
	}
	if f.designations, err = readDesignations(r, h); err != nil {
		return nil, fmt.Errorf("read time zone designations: %w", err)
	}
	if f.leaps, err = readLeapSeconds(r, h); err != nil {
		return nil, fmt.Errorf("read leap second records: %w", err)
	}
	if f.isstd, err = readIndicators(r, "standard/wall indicators", h.Isstdcnt); err != nil {
		return nil, fmt.Errorf("read standard/wall indicators: %w", err)
	}
	if f.isut, err = readIndicators(r, "UT/local indicators", h.Isutcnt); err != nil {
		return nil, fmt.Errorf("read UT/local indicators: %w", err)
	}
	f.trailing = r.remaining()
	f.zones = sync.OnceValues(f.resolveZones)
	return f, nil
}

// DecodeReader reads r to EOF and decodes the result.
func DecodeReader(r io.Reader, opts ...Option) (*File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Decode(b, opts...)
}

// ReadFile reads and decodes the TZif file at path.
func ReadFile(path string, opts ...Option) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(b, opts...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	klog.V(4).InfoS("Decoded TZif file", "Path", path, "Version", f.header.Version, "Transitions", len(f.transitions), "Types", len(f.types), "Trailing", f.trailing)
	return f, nil
}

func readHeader(r *reader) (Header, error) {
	var h Header
	hr, err := r.section("header", HeaderSize)
	if err != nil {
		return h, err
	}
	magic, err := hr.readExact(len(Magic))
	if err != nil {
		return h, err
	}
	if !bytes.Equal(magic, Magic[:]) {
		return h, fmt.Errorf("%w: %q", ErrBadMagic, magic)
	}
	v, err := hr.readUint8()
	if err != nil {
		return h, err
	}
	h.Version = Version(v)
	// Reserved for future use.
	if _, err := hr.readExact(15); err != nil {
		return h, err
	}

	counts := []struct {
		name string
		dst  *int32
	}{
		{"isutcnt", &h.Isutcnt},
		{"isstdcnt", &h.Isstdcnt},
		{"leapcnt", &h.Leapcnt},
		{"timecnt", &h.Timecnt},
		{"typecnt", &h.Typecnt},
		{"charcnt", &h.Charcnt},
	}
	for _, c := range counts {
		n, err := hr.readInt32()
		if err != nil {
			return h, err
		}
		if n < 0 {
			return h, fmt.Errorf("%w: %s = %d", ErrInvalidCount, c.name, n)
		}
		*c.dst = n
	}
	return h, nil
}

func readTransitions(r *reader, h Header) ([]Transition, error) {
	times, err := r.section("transition times", int64(h.Timecnt)*4)
	if err != nil {
		return nil, err
	}
	types, err := r.section("transition types", int64(h.Timecnt))
	if err != nil {
		return nil, err
	}
	if h.Timecnt == 0 {
		return nil, nil
	}
	ts := make([]Transition, h.Timecnt)
	for i := range ts {
		if ts[i].Time, err = times.readInt32(); err != nil {
			return nil, err
		}
		if ts[i].Type, err = types.readUint8(); err != nil {
			return nil, err
		}
	}
	return ts, nil
}

func readLocalTimeTypes(r *reader, h Header) ([]LocalTimeTypeRecord, error) {
	const name = "local time type records"
	sr, err := r.section(name, int64(h.Typecnt)*6)
	if err != nil {
		return nil, err
	}
	if h.Typecnt == 0 {
		return nil, nil
	}
	recs := make([]LocalTimeTypeRecord, h.Typecnt)
	for i := range recs {
		if recs[i].Utoff, err = sr.readInt32(); err != nil {
			return nil, err
		}
		dst, err := sr.readUint8()
		if err != nil {
			return nil, err
		}
		if dst > 1 {
			return nil, &FlagError{Section: name, Index: i, Value: dst, kind: ErrInvalidTimeType}
		}
		recs[i].Dst = dst == 1
		if recs[i].Idx, err = sr.readUint8(); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

func readDesignations(r *reader, h Header) ([]byte, error) {
	sr, err := r.section("time zone designations", int64(h.Charcnt))
	if err != nil {
		return nil, err
	}
	if h.Charcnt == 0 {
		return nil, nil
	}
	b, err := sr.readExact(int(h.Charcnt))
	if err != nil {
		return nil, err
	}
	// Copy so the File does not alias the caller's buffer.
	return bytes.Clone(b), nil
}

func readLeapSeconds(r *reader, h Header) ([]LeapSecondRecord, error) {
	sr, err := r.section("leap second records", int64(h.Leapcnt)*8)
	if err != nil {
		return nil, err
	}
	if h.Leapcnt == 0 {
		return nil, nil
	}
	recs := make([]LeapSecondRecord, h.Leapcnt)
	for i := range recs {
		if recs[i].Occur, err = sr.readInt32(); err != nil {
			return nil, err
		}
		if recs[i].Corr, err = sr.readInt32(); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

func readIndicators(r *reader, name string, n int32) ([]bool, error) {
	sr, err := r.section(name, int64(n))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	ind := make([]bool, n)
	for i := range ind {
		v, err := sr.readUint8()
		if err != nil {
			return nil, err
		}
		if v > 1 {
			return nil, &FlagError{Section: name, Index: i, Value: v, kind: ErrInvalidIndicator}
		}
		ind[i] = v == 1
	}
	return ind, nil
}
