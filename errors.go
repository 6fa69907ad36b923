// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vdf

import "fmt"

// ErrorKind discriminates the reasons a decode can fail. It is a closed
// set: every DecodeError carries exactly one of these.
type ErrorKind int

const (
	// KindUnknownMagic means the appinfo.vdf envelope version was not one
	// of MagicV27, MagicV28 or MagicV29.
	KindUnknownMagic ErrorKind = iota
	// KindInvalidType means a KV tag byte was not one of the nine known
	// value kinds.
	KindInvalidType
	// KindInvalidStringIndex means a version-29 key index fell outside
	// the pre-read string pool.
	KindInvalidStringIndex
	// KindReadError means the underlying bytes were truncated.
	KindReadError
	// KindParseError means a structural rule was violated that isn't
	// captured by the other kinds (missing NUL before EOF, KV nesting
	// deeper than MaxDepth, and similar).
	KindParseError
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknownMagic:
		return "unknown magic"
	case KindInvalidType:
		return "invalid type"
	case KindInvalidStringIndex:
		return "invalid string index"
	case KindReadError:
		return "read error"
	case KindParseError:
		return "parse error"
	default:
		return "unknown error"
	}
}

// DecodeError is the single error type every decode operation in this
// package returns. It is the Go rendering of spec's flat error taxonomy:
// one exported type with a Kind enum, rather than five distinct error
// types.
type DecodeError struct {
	Kind ErrorKind

	// Magic is set for KindUnknownMagic.
	Magic uint32
	// Type is set for KindInvalidType.
	Type byte
	// Index and Len are set for KindInvalidStringIndex.
	Index, Len int
	// Detail is a human-readable explanation, used by KindParseError.
	Detail string

	// Err is the underlying cause, if any (e.g. io.ErrUnexpectedEOF).
	Err error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindUnknownMagic:
		return fmt.Sprintf("vdf: unknown magic %#x", e.Magic)
	case KindInvalidType:
		return fmt.Sprintf("vdf: invalid type %#x", e.Type)
	case KindInvalidStringIndex:
		return fmt.Sprintf("vdf: invalid string index %d (total %d)", e.Index, e.Len)
	case KindReadError:
		if e.Err != nil {
			return fmt.Sprintf("vdf: read error: %v", e.Err)
		}
		return "vdf: read error"
	case KindParseError:
		return fmt.Sprintf("vdf: parse error: %s", e.Detail)
	default:
		return "vdf: decode error"
	}
}

// Unwrap lets callers use errors.Is/errors.As against the wrapped cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func errUnknownMagic(magic uint32) error {
	return &DecodeError{Kind: KindUnknownMagic, Magic: magic}
}

func errInvalidType(t byte) error {
	return &DecodeError{Kind: KindInvalidType, Type: t}
}

func errInvalidStringIndex(idx, length int) error {
	return &DecodeError{Kind: KindInvalidStringIndex, Index: idx, Len: length}
}

func errRead(cause error) error {
	return &DecodeError{Kind: KindReadError, Err: cause}
}

func errParse(detail string) error {
	return &DecodeError{Kind: KindParseError, Detail: detail}
}
