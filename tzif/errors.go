package tzif

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic is returned when the input does not start with "TZif".
	ErrBadMagic = errors.New("tzif: bad magic")

	// ErrUnsupportedVersion is returned for version 2+ files unless
	// WithExtendedVersions is given.
	ErrUnsupportedVersion = errors.New("tzif: unsupported version")

	// ErrInvalidCount is returned when a header count is negative.
	ErrInvalidCount = errors.New("tzif: invalid count")

	// ErrTruncatedInput is returned when a section is shorter than the header says.
	ErrTruncatedInput = errors.New("tzif: truncated input")

	// ErrInvalidTimeType is returned when a local time type record has a DST byte other than 0 or 1.
	ErrInvalidTimeType = errors.New("tzif: invalid local time type")

	// ErrInvalidIndicator is returned when a standard/wall or UT/local indicator is not 0 or 1.
	ErrInvalidIndicator = errors.New("tzif: invalid indicator")

	// ErrIndexOutOfRange is returned by queries that follow a type or designation index past its table.
	ErrIndexOutOfRange = errors.New("tzif: index out of range")
)

// TruncatedError reports a section that ended early.
type TruncatedError struct {
	// Section names the part of the file being read, e.g. "transition times".
	Section string
	// Need is the number of bytes the read required.
	Need int64
	// Have is the number of bytes that were left.
	Have int64
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("tzif: truncated input in %s: need %d bytes, have %d (short by %d)", e.Section, e.Need, e.Have, e.Shortfall())
}

// Shortfall returns the number of missing bytes.
func (e *TruncatedError) Shortfall() int64 {
	return e.Need - e.Have
}

func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncatedInput
}

// IndexError reports an index that points past the end of a table.
type IndexError struct {
	// Table is "local time types" or "time zone designations".
	Table string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("tzif: index %d out of range for %s (len %d)", e.Index, e.Table, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// FlagError reports a one-octet boolean field holding something other than 0 or 1.
type FlagError struct {
	Section string
	Index   int
	Value   byte

	kind error
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("%v: %s[%d] = %d, must be 0 or 1", e.kind, e.Section, e.Index, e.Value)
}

func (e *FlagError) Unwrap() error {
	return e.kind
}
