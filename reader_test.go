// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vdf

import "testing"

func TestCursorPrimitives(t *testing.T) {
	data := []byte{
		0x01,                   // u8
		0x34, 0x12,             // u16LE -> 0x1234
		0x78, 0x56, 0x34, 0x12, // u32LE -> 0x12345678
	}
	c := newCursor(data)

	u8, err := c.u8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("u8() = %v, %v; want 0x01, nil", u8, err)
	}

	u16, err := c.u16LE()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("u16LE() = %#x, %v; want 0x1234, nil", u16, err)
	}

	u32, err := c.u32LE()
	if err != nil || u32 != 0x12345678 {
		t.Fatalf("u32LE() = %#x, %v; want 0x12345678, nil", u32, err)
	}

	if _, err := c.u8(); err == nil {
		t.Fatalf("u8() at EOF: want error, got nil")
	}
}

func TestCursorUnexpectedEnd(t *testing.T) {
	c := newCursor([]byte{0x01, 0x02})
	if _, err := c.u32LE(); err == nil {
		t.Fatalf("u32LE() on truncated input: want error, got nil")
	}
}

func TestUTF8CString(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", append([]byte("hello"), 0), "hello"},
		{"empty", []byte{0}, ""},
		{"invalid utf8 replaced", []byte{0xff, 0xfe, 0}, "��"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.in)
			got, err := c.utf8CString()
			if err != nil {
				t.Fatalf("utf8CString() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("utf8CString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUTF8CStringMissingTerminator(t *testing.T) {
	c := newCursor([]byte("no nul here"))
	if _, err := c.utf8CString(); err == nil {
		t.Fatalf("utf8CString() without NUL: want error, got nil")
	}
}

func TestUTF16CStringNoBOM(t *testing.T) {
	// "hi" big-endian, no BOM: defaults to big-endian, first unit kept.
	data := []byte{0x00, 'h', 0x00, 'i', 0x00, 0x00}
	c := newCursor(data)
	got, err := c.utf16CString()
	if err != nil {
		t.Fatalf("utf16CString() error = %v", err)
	}
	if got != "hi" {
		t.Fatalf("utf16CString() = %q, want %q", got, "hi")
	}
}

func TestUTF16CStringLittleEndianBOM(t *testing.T) {
	// 0xFF 0xFE BOM (selects little-endian, consumed), then "hi" LE, then NUL.
	data := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00, 0x00, 0x00}
	c := newCursor(data)
	got, err := c.utf16CString()
	if err != nil {
		t.Fatalf("utf16CString() error = %v", err)
	}
	if got != "hi" {
		t.Fatalf("utf16CString() = %q, want %q", got, "hi")
	}
}

func TestUTF16CStringBigEndianBOM(t *testing.T) {
	// 0xFE 0xFF BOM (selects big-endian, consumed), then "hi" BE, then NUL.
	data := []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i', 0x00, 0x00}
	c := newCursor(data)
	got, err := c.utf16CString()
	if err != nil {
		t.Fatalf("utf16CString() error = %v", err)
	}
	if got != "hi" {
		t.Fatalf("utf16CString() = %q, want %q", got, "hi")
	}
}

func TestCursorSeek(t *testing.T) {
	c := newCursor([]byte{0, 1, 2, 3, 4})
	if err := c.seek(3); err != nil {
		t.Fatalf("seek(3) error = %v", err)
	}
	if c.tell() != 3 {
		t.Fatalf("tell() = %d, want 3", c.tell())
	}
	if err := c.seek(6); err == nil {
		t.Fatalf("seek(6) past end: want error, got nil")
	}
}
