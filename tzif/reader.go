package tzif

import "encoding/binary"

// NOTE: All multi-octet integer values MUST be stored in network octet
// order format (high-order octet first, otherwise known as big-endian),
// with all bits significant.  Signed integer values MUST be represented
// using two's complement.
var order = binary.BigEndian

// reader reads fixed-width values from an in-memory buffer.
// It only moves forward.
type reader struct {
	name string
	buf  []byte
	off  int
}

func newReader(name string, b []byte) *reader {
	return &reader{name: name, buf: b}
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) truncated(need int64) error {
	return &TruncatedError{Section: r.name, Need: need, Have: int64(r.remaining())}
}

// readExact returns the next n bytes. The result aliases the buffer.
func (r *reader) readExact(n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, r.truncated(int64(n))
	}
	b := r.buf[r.off : r.off+n : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) readInt32() (int32, error) {
	b, err := r.readExact(4)
	if err != nil {
		return 0, err
	}
	return int32(order.Uint32(b)), nil
}

func (r *reader) readUint8() (uint8, error) {
	b, err := r.readExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// section carves the next n bytes into a reader of their own so that a
// short file is reported against the whole section rather than the record
// that happened to hit the end.
func (r *reader) section(name string, n int64) (*reader, error) {
	if n > int64(r.remaining()) {
		return nil, &TruncatedError{Section: name, Need: n, Have: int64(r.remaining())}
	}
	b, err := r.readExact(int(n))
	if err != nil {
		return nil, err
	}
	return newReader(name, b), nil
}
