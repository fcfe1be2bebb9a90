package zdump

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ngrash/zdump/tzif"
)

// PrintDump writes every section of f, one after the other.
// Transitions are listed with their raw type index so that files with
// dangling indices can still be inspected.
func PrintDump(w io.Writer, f *tzif.File, loc *time.Location) error {
	h := f.Header()
	ew := &errWriter{w: w}

	ew.printf("%15s: %v\n", "version", h.Version)
	for _, c := range []struct {
		name string
		n    int32
	}{
		{"ttisgmtcnt", h.Isutcnt},
		{"ttisstdcnt", h.Isstdcnt},
		{"leapcnt", h.Leapcnt},
		{"timecnt", h.Timecnt},
		{"typecnt", h.Typecnt},
		{"charcnt", h.Charcnt},
	} {
		ew.printf("%15s: %d\n", c.name, c.n)
	}

	ew.printf("Transitions:\n")
	for _, t := range f.RawTransitions() {
		ew.printf("  %s -> type %d\n", tzif.Ctime(int64(t.Time), loc), t.Type)
	}

	ew.printf("Types:\n")
	for i, t := range f.LocalTimeTypes() {
		ew.printf("  [%d] utoff=%d dst=%t idx=%d\n", i, t.Utoff, t.Dst, t.Idx)
	}

	ew.printf("Abbreviations: %q\n", f.Designations())

	ew.printf("Leap seconds:\n")
	for _, l := range f.LeapSeconds() {
		ew.printf("  %d seconds at %s\n", l.Corr, tzif.Ctime(int64(l.Occur), loc))
	}

	ew.printf("standard/wall indicators: %v\n", f.StandardWallIndicators())
	ew.printf("utc/local indicators: %v\n", f.UTLocalIndicators())
	if n := f.Trailing(); n > 0 {
		ew.printf("remaining data: %d bytes\n", n)
	}
	return ew.err
}

// PrintTypes writes the resolved local time types of f.
func PrintTypes(w io.Writer, f *tzif.File) error {
	types, err := f.Types()
	if err != nil {
		return err
	}
	ew := &errWriter{w: w}
	for i, z := range types {
		ew.printf("[%d] %v\n", i, z)
	}
	return ew.err
}

// PrintTransitions writes one "At <time>, switch to <abbreviation>" line per transition.
func PrintTransitions(w io.Writer, f *tzif.File, loc *time.Location) error {
	lines, err := f.FormattedTransitions(loc)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	_, err = io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
