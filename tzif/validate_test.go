package tzif

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	for name, data := range map[string][]byte{
		"honolulu": honoluluV1,
		"est":      estFile(),
	} {
		t.Run(name, func(t *testing.T) {
			if err := mustDecode(t, data).Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestValidate_ZeroCounts(t *testing.T) {
	err := mustDecode(t, header(0, 0, 0, 0, 0, 0, 0)).Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"invalid typecnt", "invalid charcnt"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, want it to contain %q", err, want)
		}
	}
}

func TestValidate_Violations(t *testing.T) {
	data := concat(
		header(0, 1, 0, 2, 2, 1, 3),
		be32(200), be32(100), // transition times, descending
		[]byte{0, 4}, // transition types; 4 is out of range
		be32(3600), []byte{0, 3}, // designation index past the table
		[]byte("CET"), // no terminator
		be32(100), be32(1), // leapsecond[0]
		be32(200), be32(2), // leapsecond[1], too close to the previous one
		[]byte{1}, // UT/local[0] set without standard/wall
	)
	f := mustDecode(t, data)
	err := f.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Validate() = %v, want it to wrap ErrIndexOutOfRange", err)
	}
	for _, want := range []string{
		"UT/local is set but standard/wall is not",
		"missing null terminator",
		"invalid local time type 0",
		"index 4 out of range for local time types",
		"invalid transition 1: time 100 not after previous time 200",
		"invalid leap second record 1",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, want it to contain %q", err, want)
		}
	}
}
