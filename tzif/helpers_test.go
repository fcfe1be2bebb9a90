package tzif

import "encoding/binary"

// be32 returns v as four big-endian octets.
func be32(v int32) []byte {
	return binary.BigEndian.AppendUint32(nil, uint32(v))
}

// header assembles a 44-octet version 1 header with the given counts in file order.
func header(version byte, isutcnt, isstdcnt, leapcnt, timecnt, typecnt, charcnt int32) []byte {
	b := []byte{'T', 'Z', 'i', 'f', version}
	b = append(b, make([]byte, 15)...)
	for _, c := range []int32{isutcnt, isstdcnt, leapcnt, timecnt, typecnt, charcnt} {
		b = append(b, be32(c)...)
	}
	return b
}

func concat(parts ...[]byte) []byte {
	var b []byte
	for _, p := range parts {
		b = append(b, p...)
	}
	return b
}

// estFile is a single transition at the epoch into EST.
func estFile() []byte {
	return concat(
		header(0, 0, 0, 0, 1, 1, 4),
		be32(0),                    // transition time[0]
		[]byte{0},                  // transition type[0]
		be32(-18000), []byte{0, 0}, // localtimetype[0]
		[]byte("EST\x00"),          // designations
	)
}

// honoluluV1 is the version 1 part of example B.2 in RFC 8536 with the
// version octet of the header set to NUL.
var honoluluV1 = []byte{
	0x54, 0x5a, 0x69, 0x66, // magic
	0x00, // version
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x06, // isutcnt
	0x00, 0x00, 0x00, 0x06, // isstdcnt
	0x00, 0x00, 0x00, 0x00, // leapcnt
	0x00, 0x00, 0x00, 0x07, // timecnt
	0x00, 0x00, 0x00, 0x06, // typecnt
	0x00, 0x00, 0x00, 0x14, // charcnt
	0x80, 0x00, 0x00, 0x00, // trans time[0]
	0xbb, 0x05, 0x43, 0x48, // trans time[1]
	0xbb, 0x21, 0x71, 0x58, // trans time[2]
	0xcb, 0x89, 0x3d, 0xc8, // trans time[3]
	0xd2, 0x23, 0xf4, 0x70, // trans time[4]
	0xd2, 0x61, 0x49, 0x38, // trans time[5]
	0xd5, 0x8d, 0x73, 0x48, // trans time[6]
	0x01, // trans type[0]
	0x02, // trans type[1]
	0x01, // trans type[2]
	0x03, // trans type[3]
	0x04, // trans type[4]
	0x01, // trans type[5]
	0x05, // trans type[6]
	// localtimetype[0]
	0xff, 0xff, 0x6c, 0x02, // utcoff
	0x00, // isdst
	0x00, // desigidx
	// localtimetype[1]
	0xff, 0xff, 0x6c, 0x58, // utcoff
	0x00, // isdst
	0x04, // desigidx
	// localtimetype[2]
	0xff, 0xff, 0x7a, 0x68, // utcoff
	0x01, // isdst
	0x08, // desigidx
	// localtimetype[3]
	0xff, 0xff, 0x7a, 0x68, // utcoff
	0x01, // isdst
	0x0c, // desigidx
	// localtimetype[4]
	0xff, 0xff, 0x7a, 0x68, // utcoff
	0x01, // isdst
	0x10, // desigidx
	// localtimetype[5]
	0xff, 0xff, 0x73, 0x60, // utcoff
	0x00,                   // isdst
	0x04,                   // desigidx
	0x4c, 0x4d, 0x54, 0x00, // designations[0]
	0x48, 0x53, 0x54, 0x00, // designations[4]
	0x48, 0x44, 0x54, 0x00, // designations[8]
	0x48, 0x57, 0x54, 0x00, // designations[12]
	0x48, 0x50, 0x54, 0x00, // designations[16]
	0x01, // standard/wall[0]
	0x00, // standard/wall[1]
	0x00, // standard/wall[2]
	0x00, // standard/wall[3]
	0x01, // standard/wall[4]
	0x00, // standard/wall[5]
	0x01, // UT/local[0]
	0x00, // UT/local[1]
	0x00, // UT/local[2]
	0x00, // UT/local[3]
	0x01, // UT/local[4]
	0x00, // UT/local[5]
}
