// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vdf

// Value is the closed set of shapes a decoded KV entry can take. The tag
// byte on the wire dictates which concrete type a Value holds; callers are
// expected to type-switch on it the same way the wire format switches on
// the tag, rather than downcast a shared base.
type Value interface {
	isValue()
}

// StringValue is a UTF-8 string decoded from a NUL-terminated byte run
// (tag 0x01). Decoding is lossy: invalid byte sequences become U+FFFD.
type StringValue string

// WideStringValue is a string decoded from a NUL-terminated UTF-16 code
// unit run (tag 0x05). Decoding is lossy: unpaired surrogates become
// U+FFFD.
type WideStringValue string

// Int32Value is a signed 32-bit integer (tag 0x02).
type Int32Value int32

// PointerValue is a signed 32-bit value semantically meant as a pointer
// (tag 0x04). Stored verbatim; never dereferenced.
type PointerValue int32

// ColorValue is a signed 32-bit value semantically meant as ARGB (tag
// 0x06). Stored verbatim.
type ColorValue int32

// UInt64Value is an unsigned 64-bit integer (tag 0x07).
type UInt64Value uint64

// Int64Value is a signed 64-bit integer (tag 0x0A).
type Int64Value int64

// Float32Value is an IEEE-754 binary32 float (tag 0x03).
type Float32Value float32

// KeyValue is a nested mapping from key names to Values (tag 0x00 when
// appearing as a child; also the type of App.KeyValues and of the top
// level of a parsed shortcuts.vdf). Key order is not part of the
// contract; duplicate keys at the same level resolve last-write-wins.
type KeyValue map[string]Value

func (StringValue) isValue()     {}
func (WideStringValue) isValue() {}
func (Int32Value) isValue()      {}
func (PointerValue) isValue()    {}
func (ColorValue) isValue()      {}
func (UInt64Value) isValue()     {}
func (Int64Value) isValue()      {}
func (Float32Value) isValue()    {}
func (KeyValue) isValue()        {}
