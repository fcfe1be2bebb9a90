package tzif

import (
	"fmt"
	"time"
)

// Ctime formats a Unix timestamp the way C ctime(3) does, without the
// trailing newline. A nil loc means time.Local.
func Ctime(sec int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(sec, 0).In(loc).Format(time.ANSIC)
}

// FormattedTransitions renders each transition as
// "At <ctime>, switch to <abbreviation>" with times shown in loc.
// A nil loc means time.Local.
func (f *File) FormattedTransitions(loc *time.Location) ([]string, error) {
	var out []string
	s := f.Transitions()
	for s.Scan() {
		zt := s.Transition()
		out = append(out, fmt.Sprintf("At %s, switch to %s", Ctime(zt.Time, loc), zt.Zone.Abbreviation))
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
