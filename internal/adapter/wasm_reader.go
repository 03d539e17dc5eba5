package adapter

import (
	"fmt"

	"gooze.dev/pkg/wasmut/pkg"
)

// byteReader is a forward-only cursor over a section or body payload.
type byteReader struct {
	data []byte
	pos  int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

func (r *byteReader) remaining() int {
	return len(r.data) - r.pos
}

func (r *byteReader) done() bool {
	return r.pos >= len(r.data)
}

func (r *byteReader) readByte() (byte, error) {
	if r.done() {
		return 0, fmt.Errorf("%w: unexpected end of input at offset %d", ErrInvalidModule, r.pos)
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

func (r *byteReader) readBytes(n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrInvalidModule, n, r.pos, r.remaining())
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

func (r *byteReader) uleb(bits uint) (uint64, error) {
	v, n, err := pkg.ReadULEB128(r.data[r.pos:], bits)
	if err != nil {
		return 0, fmt.Errorf("%w: offset %d: %w", ErrInvalidModule, r.pos, err)
	}

	r.pos += n

	return v, nil
}

func (r *byteReader) u32() (uint32, error) {
	v, err := r.uleb(32)
	return uint32(v), err
}

func (r *byteReader) sleb(bits uint) (int64, error) {
	v, n, err := pkg.ReadSLEB128(r.data[r.pos:], bits)
	if err != nil {
		return 0, fmt.Errorf("%w: offset %d: %w", ErrInvalidModule, r.pos, err)
	}

	r.pos += n

	return v, nil
}

// name reads a length-prefixed UTF-8 string.
func (r *byteReader) name() (string, error) {
	n, err := r.u32()
	if err != nil {
		return "", err
	}

	b, err := r.readBytes(int(n))
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// valType skips a value type, including the reference forms with a heap type.
func (r *byteReader) valType() error {
	b, err := r.readByte()
	if err != nil {
		return err
	}

	if b == refNullable || b == refNonNullable {
		_, err = r.sleb(33)
	}

	return err
}

// limits skips a table or memory limits declaration.
func (r *byteReader) limits() error {
	flags, err := r.readByte()
	if err != nil {
		return err
	}

	if _, err := r.uleb(64); err != nil {
		return err
	}

	if flags&0x01 != 0 {
		if _, err := r.uleb(64); err != nil {
			return err
		}
	}

	if flags&0x08 != 0 {
		_, err = r.u32()
	}

	return err
}
