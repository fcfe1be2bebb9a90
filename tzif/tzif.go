// Package tzif decodes version 1 TZif files as described in RFC8536
// and tzfile(5).
// https://datatracker.ietf.org/doc/html/rfc8536
//
// Only the legacy 32-bit data block is decoded. Cross-references between
// sections are resolved lazily by the query methods on File, so a file
// with dangling indices still decodes and reports ErrIndexOutOfRange when
// the bad entry is used.
package tzif

import "fmt"

// Version represents the version of a TZif file.
// The version is an octet identifying the version of the file's format.
type Version byte

func (v Version) String() string {
	switch v {
	case V1:
		return "V1 (0x00)"
	case V2:
		return "V2 (0x32)"
	case V3:
		return "V3 (0x33)"
	case V4:
		return "V4 (0x34)"
	default:
		return fmt.Sprintf("<undefined version (%d)>", byte(v))
	}
}

const (
	// V1 represents a version 1 TZif file.
	//
	// NUL (0x00)  Version 1 - The file contains only the version 1
	// header and data block.  Version 1 files MUST NOT contain a
	// version 2+ header, data block, or footer.
	V1 Version = 0x00
	// V2 files carry a second, 64-bit header and data block plus a footer.
	V2 Version = 0x32 // '2'
	// V3 is V2 with TZ string extensions in the footer.
	V3 Version = 0x33 // '3'
	// V4 is V3 with relaxed leap second table rules.
	V4 Version = 0x34 // '4'
)

// Magic is the four-octet ASCII sequence "TZif" (0x54 0x5A 0x69 0x66),
// which identifies the file as utilizing the Time Zone Information Format.
var Magic = [4]byte{'T', 'Z', 'i', 'f'}

// HeaderSize is the size of the version 1 header in octets.
const HeaderSize = 44

// Header is the header of a TZif file.
//
// A TZif header is structured as follows (the lengths of multi-octet
// fields are shown in parentheses):
//
//	+---------------+---+
//	|  magic    (4) |ver|
//	+---------------+---+---------------------------------------+
//	|           [unused - reserved for future use] (15)         |
//	+---------------+---------------+---------------+-----------+
//	|  isutcnt  (4) |  isstdcnt (4) |  leapcnt  (4) |
//	+---------------+---------------+---------------+
//	|  timecnt  (4) |  typecnt  (4) |  charcnt  (4) |
//	+---------------+---------------+---------------+
//
// The counts are read as signed integers, as tzfile.h declares them,
// and must not be negative.
type Header struct {
	// Version is an octet identifying the version of the file's format.
	Version Version

	// Isutcnt is the number of UT/local indicators (tzh_ttisgmtcnt).
	Isutcnt int32

	// Isstdcnt is the number of standard/wall indicators (tzh_ttisstdcnt).
	Isstdcnt int32

	// Leapcnt is the number of leap-second records.
	Leapcnt int32

	// Timecnt is the number of transition times.
	Timecnt int32

	// Typecnt is the number of local time type records.
	Typecnt int32

	// Charcnt is the total number of octets used by the time zone
	// designations, including the trailing NUL.
	Charcnt int32
}

// Transition is one entry of the transition times paired with the entry
// at the same position in the transition types.
type Transition struct {
	// Time is a four-octet UNIX leap-time value at which the rules for
	// computing local time may change.
	Time int32

	// Type is a zero-based index into the local time type records.
	// It is not checked against Typecnt while decoding.
	Type uint8
}

// LocalTimeTypeRecord represents a local time type record.
// Each record has the following format (the lengths of multi-octet fields
// are shown in parentheses):
//
//	+---------------+---+---+
//	|  utoff (4)    |dst|idx|
//	+---------------+---+---+
type LocalTimeTypeRecord struct {
	// Utoff is the number of seconds to be added to UT in order to
	// determine local time.
	Utoff int32

	// Dst indicates whether local time should be considered Daylight
	// Saving Time (DST).  The octet MUST be 0 or 1.
	Dst bool

	// Idx is a zero-based index into the time zone designations.
	// It is not checked against Charcnt while decoding.
	Idx uint8
}

// LeapSecondRecord represents a version 1 leap-second record.
//
//	+---------------+---------------+
//	|  occur (4)    |  corr (4)     |
//	+---------------+---------------+
type LeapSecondRecord struct {
	// Occur is the UNIX leap time at which the correction occurs.
	Occur int32

	// Corr is the value of LEAPCORR on or after the occurrence.
	Corr int32
}

// Zone is a local time type with its designation resolved.
type Zone struct {
	// Offset is the number of seconds east of UTC.
	Offset int
	// IsDST reports whether the type is daylight saving time.
	IsDST bool
	// Abbreviation is the time zone designation, e.g. "CET".
	Abbreviation string
}

func (z Zone) String() string {
	return fmt.Sprintf("%s: UTC%+d dst=%t", z.Abbreviation, z.Offset, z.IsDST)
}

// ZoneTransition is a transition joined with the zone it switches to.
type ZoneTransition struct {
	// Time is in seconds since 1970-01-01 UTC.
	Time int64
	Zone Zone
}
