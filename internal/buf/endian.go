// Package buf contains helpers for endian-safe decoding routines.
package buf

// Order selects the byte order for multi-byte fields. Console saves mix both:
// the PS2 build stores words little-endian while the PS3, Wii, and Xbox 360
// builds store them big-endian.
type Order int

const (
	// Big reads and writes the most significant byte first.
	Big Order = iota
	// Little reads and writes the least significant byte first.
	Little
)

// String returns "big" or "little".
func (o Order) String() string {
	if o == Little {
		return "little"
	}
	return "big"
}

// U16 reads a uint16 from b at off using the given byte order.
// Callers guarantee off+2 <= len(b).
func U16(b []byte, off int, o Order) uint16 {
	if o == Little {
		return uint16(b[off]) | uint16(b[off+1])<<8
	}
	return uint16(b[off])<<8 | uint16(b[off+1])
}

// PutU16 writes a uint16 to b at off using the given byte order.
// Callers guarantee off+2 <= len(b).
func PutU16(b []byte, off int, v uint16, o Order) {
	if o == Little {
		b[off] = byte(v)
		b[off+1] = byte(v >> 8)
		return
	}
	b[off] = byte(v >> 8)
	b[off+1] = byte(v)
}

// U24 reads a 24-bit unsigned integer from b at off using the given byte
// order. The ordering rule is the 16-bit rule extended to three bytes.
// Callers guarantee off+3 <= len(b).
func U24(b []byte, off int, o Order) uint32 {
	if o == Little {
		return uint32(b[off]) | uint32(b[off+1])<<8 | uint32(b[off+2])<<16
	}
	return uint32(b[off])<<16 | uint32(b[off+1])<<8 | uint32(b[off+2])
}

// PutU24 writes the low 24 bits of v to b at off using the given byte order.
// Callers guarantee off+3 <= len(b).
func PutU24(b []byte, off int, v uint32, o Order) {
	v &= 0xFFFFFF
	if o == Little {
		b[off] = byte(v)
		b[off+1] = byte(v >> 8)
		b[off+2] = byte(v >> 16)
		return
	}
	b[off] = byte(v >> 16)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v)
}
