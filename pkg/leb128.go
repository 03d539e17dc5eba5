package pkg

import (
	"errors"
	"fmt"
)

// ErrLEB128Overflow is returned when an encoded integer does not fit the requested width.
var ErrLEB128Overflow = errors.New("leb128: integer overflow")

// ErrLEB128Truncated is returned when the input ends in the middle of an encoded integer.
var ErrLEB128Truncated = errors.New("leb128: unexpected end of input")

// ReadULEB128 decodes an unsigned LEB128 integer of at most bits width.
// It returns the value and the number of bytes consumed.
func ReadULEB128(data []byte, bits uint) (uint64, int, error) {
	var (
		result uint64
		shift  uint
	)

	for i, b := range data {
		if shift >= bits {
			return 0, 0, fmt.Errorf("%w: more than %d bits", ErrLEB128Overflow, bits)
		}

		result |= uint64(b&0x7f) << shift
		shift += 7

		if b&0x80 == 0 {
			if bits < 64 && result>>bits != 0 {
				return 0, 0, fmt.Errorf("%w: value exceeds %d bits", ErrLEB128Overflow, bits)
			}

			return result, i + 1, nil
		}
	}

	return 0, 0, ErrLEB128Truncated
}

// ReadSLEB128 decodes a signed LEB128 integer of at most bits width.
func ReadSLEB128(data []byte, bits uint) (int64, int, error) {
	var (
		result int64
		shift  uint
	)

	for i, b := range data {
		if shift >= bits+7 {
			return 0, 0, fmt.Errorf("%w: more than %d bits", ErrLEB128Overflow, bits)
		}

		result |= int64(b&0x7f) << shift
		shift += 7

		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				result |= -1 << shift
			}

			return result, i + 1, nil
		}
	}

	return 0, 0, ErrLEB128Truncated
}

// AppendULEB128 appends the minimal unsigned LEB128 encoding of v.
func AppendULEB128(dst []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7

		if v == 0 {
			return append(dst, b)
		}

		dst = append(dst, b|0x80)
	}
}

// AppendSLEB128 appends the minimal signed LEB128 encoding of v.
func AppendSLEB128(dst []byte, v int64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7

		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(dst, b)
		}

		dst = append(dst, b|0x80)
	}
}
