// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vdf

import (
	"math"
	"reflect"
	"testing"
)

// encodeKVForTest mirrors decodeKV in reverse, using inline UTF-8 keys and
// the default 0x08 terminator (version-28 rules). It exists only to
// exercise the round-trip invariant in tests.
func encodeKVForTest(kv KeyValue) []byte {
	var out []byte
	for key, value := range kv {
		switch v := value.(type) {
		case KeyValue:
			out = append(out, tagKeyValue)
			out = append(out, cString(key)...)
			out = append(out, encodeKVForTest(v)...)
		case StringValue:
			out = append(out, tagString)
			out = append(out, cString(key)...)
			out = append(out, cString(string(v))...)
		case Int32Value:
			out = append(out, tagInt32)
			out = append(out, cString(key)...)
			out = append(out, le32(uint32(v))...)
		case UInt64Value:
			out = append(out, tagUInt64)
			out = append(out, cString(key)...)
			out = append(out, le64(uint64(v))...)
		case Float32Value:
			out = append(out, tagFloat32)
			out = append(out, cString(key)...)
			bits := math.Float32bits(float32(v))
			out = append(out, le32(bits)...)
		default:
			panic("encodeKVForTest: unsupported value kind in test fixture")
		}
	}
	out = append(out, tagEnd)
	return out
}

func TestRoundTripKeyValue(t *testing.T) {
	tree := KeyValue{
		"name":  StringValue("Half-Life 2"),
		"appid": Int32Value(220),
		"size":  UInt64Value(1 << 34),
		"ratio": Float32Value(1.5),
		"nested": KeyValue{
			"english": StringValue("Half-Life 2"),
			"french":  StringValue("Half-Life 2"),
		},
	}

	encoded := encodeKVForTest(tree)
	decoded, err := ParseKeyValues(encoded, nil)
	if err != nil {
		t.Fatalf("ParseKeyValues() error = %v", err)
	}

	if !reflect.DeepEqual(decoded, tree) {
		t.Fatalf("decode(encode(tree)) = %#v, want %#v", decoded, tree)
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	tree := KeyValue{
		"a": Int32Value(1),
		"b": KeyValue{"c": StringValue("d")},
	}
	encoded := encodeKVForTest(tree)

	first, err := ParseKeyValues(encoded, nil)
	if err != nil {
		t.Fatalf("ParseKeyValues() error = %v", err)
	}
	second, err := ParseKeyValues(encoded, nil)
	if err != nil {
		t.Fatalf("ParseKeyValues() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("decode(bytes) not deterministic: %#v != %#v", first, second)
	}
}
