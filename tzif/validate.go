package tzif

import (
	"errors"
	"fmt"
)

// Validate checks the decoded file against the constraints RFC8536 places
// on a version 1 data block and returns every violation joined together.
// Decoding never calls Validate; files that fail it can still be queried.
func (f *File) Validate() error {
	var (
		errs   []error
		header = f.header
	)

	// Isutcnt
	if header.Isutcnt != 0 && header.Isutcnt != header.Typecnt {
		errs = append(errs, fmt.Errorf("invalid isutcnt (%d): must be 0 or equal to typecnt (%d)", header.Isutcnt, header.Typecnt))
	}

	// Isstdcnt
	if header.Isstdcnt != 0 && header.Isstdcnt != header.Typecnt {
		errs = append(errs, fmt.Errorf("invalid isstdcnt (%d): must be 0 or equal to typecnt (%d)", header.Isstdcnt, header.Typecnt))
	}
	for i, ut := range f.isut {
		if ut && (i >= len(f.isstd) || !f.isstd[i]) {
			errs = append(errs, fmt.Errorf("invalid indicators for type %d: UT/local is set but standard/wall is not", i))
		}
	}

	// Typecnt
	if header.Typecnt == 0 {
		errs = append(errs, errors.New("invalid typecnt: must not be zero"))
	}

	// Charcnt
	if header.Charcnt == 0 {
		errs = append(errs, errors.New("invalid charcnt: must not be zero"))
	}
	if header.Charcnt > 0 && f.designations[len(f.designations)-1] != 0 {
		errs = append(errs, errors.New("invalid time zone designations: missing null terminator"))
	}
	for i, t := range f.types {
		if int(t.Idx) >= len(f.designations) {
			errs = append(errs, fmt.Errorf("invalid local time type %d: %w", i, &IndexError{Table: "time zone designations", Index: int(t.Idx), Len: len(f.designations)}))
		}
	}

	// Transitions
	for i, t := range f.transitions {
		if int(t.Type) >= len(f.types) {
			errs = append(errs, fmt.Errorf("invalid transition %d: %w", i, &IndexError{Table: "local time types", Index: int(t.Type), Len: len(f.types)}))
		}
		if i > 0 && t.Time <= f.transitions[i-1].Time {
			errs = append(errs, fmt.Errorf("invalid transition %d: time %d not after previous time %d", i, t.Time, f.transitions[i-1].Time))
		}
	}

	// Leapcnt
	for i, l := range f.leaps {
		if i == 0 {
			if l.Occur < 0 {
				errs = append(errs, fmt.Errorf("invalid leap second record 0: occurrence %d is negative", l.Occur))
			}
			continue
		}
		prev := f.leaps[i-1]
		if int64(l.Occur)-int64(prev.Occur) < 2419199 {
			errs = append(errs, fmt.Errorf("invalid leap second record %d: occurrence %d less than 28 days after %d", i, l.Occur, prev.Occur))
		}
	}
	return errors.Join(errs...)
}
