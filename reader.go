// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vdf

import (
	"io"
	"math"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// cursor is a position-advancing view over an in-memory byte slice. Every
// primitive either succeeds and advances pos by exactly the bytes
// consumed, or fails: the fixed-width readers with a KindReadError
// DecodeError, the C-string readers with a KindParseError DecodeError when
// no NUL terminator precedes EOF. Callers are not expected to recover a
// cursor after a failed read.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

// tell returns the current absolute byte offset.
func (c *cursor) tell() int { return c.pos }

// seek moves the cursor to an absolute offset. It is used by the
// version-29 string pool resolver to jump to the pool and back.
func (c *cursor) seek(pos int) error {
	if pos < 0 || pos > len(c.data) {
		return errRead(io.ErrUnexpectedEOF)
	}
	c.pos = pos
	return nil
}

func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, errRead(io.ErrUnexpectedEOF)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// fixed copies exactly n bytes.
func (c *cursor) fixed(n int) ([]byte, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func (c *cursor) u8() (byte, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) u16LE() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

func (c *cursor) u16BE() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (c *cursor) u32LE() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

func (c *cursor) u64LE() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v, nil
}

func (c *cursor) i32LE() (int32, error) {
	v, err := c.u32LE()
	return int32(v), err
}

func (c *cursor) i64LE() (int64, error) {
	v, err := c.u64LE()
	return int64(v), err
}

func (c *cursor) f32LE() (float32, error) {
	v, err := c.u32LE()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// utf8CString reads until and including a single NUL byte, decoding the
// preceding bytes as UTF-8. Invalid sequences become U+FFFD rather than
// aborting the parse, matching Rust's String::from_utf8_lossy that the
// original decoder relies on.
func (c *cursor) utf8CString() (string, error) {
	start := c.pos
	for {
		b, err := c.u8()
		if err != nil {
			return "", errParse("missing NUL terminator before EOF")
		}
		if b == 0 {
			raw := c.data[start : c.pos-1]
			return lossyUTF8(raw), nil
		}
	}
}

func lossyUTF8(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	var b strings.Builder
	b.Grow(len(raw))
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		b.WriteRune(r)
		raw = raw[size:]
	}
	return b.String()
}

// utf16CString reads until and including a NUL code unit, honouring an
// optional byte-order mark on the first code unit: U+FEFF selects
// big-endian and is consumed, U+FFFE selects little-endian and is
// consumed, anything else is read big-endian with no byte discarded.
// Unpaired surrogates decode to U+FFFD.
func (c *cursor) utf16CString() (string, error) {
	first, err := c.u16BE()
	if err != nil {
		return "", errParse("missing NUL terminator before EOF")
	}

	var units []uint16
	bigEndian := true

	switch first {
	case 0xFEFF:
		bigEndian = true
	case 0xFFFE:
		bigEndian = false
	default:
		if first == 0 {
			return "", nil
		}
		units = append(units, first)
	}

	readUnit := c.u16BE
	if !bigEndian {
		readUnit = c.u16LE
	}

	for {
		u, err := readUnit()
		if err != nil {
			return "", errParse("missing NUL terminator before EOF")
		}
		if u == 0 {
			break
		}
		units = append(units, u)
	}

	return string(utf16.Decode(units)), nil
}
