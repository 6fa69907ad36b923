// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vdf

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// Wire tag bytes for the nine value kinds plus the two possible map
// terminators.
const (
	tagKeyValue   byte = 0x00
	tagString     byte = 0x01
	tagInt32      byte = 0x02
	tagFloat32    byte = 0x03
	tagPointer    byte = 0x04
	tagWideString byte = 0x05
	tagColor      byte = 0x06
	tagUInt64     byte = 0x07
	tagEnd        byte = 0x08
	tagInt64      byte = 0x0A
	tagEndAlt     byte = 0x0B
)

// defaultMaxDepth caps KV nesting so a hostile or truncated input can't
// blow the goroutine stack; real appinfo/shortcuts data nests at most a
// handful of levels deep.
const defaultMaxDepth = 256

// KeyValueOptions configures a single ParseKeyValues call (and the
// recursive decodeKV it drives).
type KeyValueOptions struct {
	// StringPool, when non-nil, makes keys decode as u32 indices into
	// this table (version-29 appinfo.vdf). When nil, keys decode as
	// inline NUL-terminated UTF-8 strings.
	StringPool []string

	// AltEnd selects the legacy 0x0B map terminator instead of the
	// default 0x08. No code path in the source data this was modeled on
	// ever sets it; it is carried for completeness only.
	AltEnd bool

	// MaxDepth caps recursion; zero means defaultMaxDepth.
	MaxDepth int
}

func (o *KeyValueOptions) maxDepth() int {
	if o == nil || o.MaxDepth == 0 {
		return defaultMaxDepth
	}
	return o.MaxDepth
}

func (o *KeyValueOptions) terminator() byte {
	if o != nil && o.AltEnd {
		return tagEndAlt
	}
	return tagEnd
}

func (o *KeyValueOptions) pool() []string {
	if o == nil {
		return nil
	}
	return o.StringPool
}

// ParseKeyValues decodes a standalone KV stream with no envelope, the
// shape shortcuts.vdf is stored in.
func ParseKeyValues(data []byte, opts *KeyValueOptions) (KeyValue, error) {
	c := newCursor(data)
	return decodeKV(c, opts, 0)
}

// ParseKeyValuesFile memory-maps path and decodes it as a standalone KV
// stream, mirroring LoadCatalogFile's mmap-based loading of appinfo.vdf.
func ParseKeyValuesFile(path string, opts *KeyValueOptions) (KeyValue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer data.Unmap()

	return ParseKeyValues([]byte(data), opts)
}

// decodeKV implements the recursive tag-stream algorithm from the format's
// component design: read a type byte, stop on the terminator, otherwise
// read a key and dispatch the tag to a payload reader.
func decodeKV(c *cursor, opts *KeyValueOptions, depth int) (KeyValue, error) {
	if depth > opts.maxDepth() {
		return nil, errParse("key-value nesting exceeds maximum depth")
	}

	terminator := opts.terminator()
	pool := opts.pool()
	node := make(KeyValue)

	for {
		t, err := c.u8()
		if err != nil {
			return nil, errParse("unterminated key-value map")
		}
		if t == terminator {
			return node, nil
		}

		key, err := decodeKey(c, pool)
		if err != nil {
			return nil, err
		}

		value, err := decodeValue(c, t, opts, depth)
		if err != nil {
			return nil, err
		}

		node[key] = value
	}
}

func decodeKey(c *cursor, pool []string) (string, error) {
	if pool == nil {
		return c.utf8CString()
	}

	idx, err := c.u32LE()
	if err != nil {
		return "", err
	}
	i := int(idx)
	if i < 0 || i >= len(pool) {
		return "", errInvalidStringIndex(i, len(pool))
	}
	return pool[i], nil
}

func decodeValue(c *cursor, tag byte, opts *KeyValueOptions, depth int) (Value, error) {
	switch tag {
	case tagKeyValue:
		sub, err := decodeKV(c, opts, depth+1)
		if err != nil {
			return nil, err
		}
		return sub, nil
	case tagString:
		s, err := c.utf8CString()
		if err != nil {
			return nil, err
		}
		return StringValue(s), nil
	case tagWideString:
		s, err := c.utf16CString()
		if err != nil {
			return nil, err
		}
		return WideStringValue(s), nil
	case tagInt32:
		v, err := c.i32LE()
		if err != nil {
			return nil, err
		}
		return Int32Value(v), nil
	case tagPointer:
		v, err := c.i32LE()
		if err != nil {
			return nil, err
		}
		return PointerValue(v), nil
	case tagColor:
		v, err := c.i32LE()
		if err != nil {
			return nil, err
		}
		return ColorValue(v), nil
	case tagUInt64:
		v, err := c.u64LE()
		if err != nil {
			return nil, err
		}
		return UInt64Value(v), nil
	case tagInt64:
		v, err := c.i64LE()
		if err != nil {
			return nil, err
		}
		return Int64Value(v), nil
	case tagFloat32:
		v, err := c.f32LE()
		if err != nil {
			return nil, err
		}
		return Float32Value(v), nil
	default:
		return nil, errInvalidType(tag)
	}
}
