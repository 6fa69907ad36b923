// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vdf

// Fuzz is the legacy go-fuzz harness entry point for the appinfo.vdf
// envelope decoder, matching the signature the go-fuzz-build tool expects.
func Fuzz(data []byte) int {
	catalog, err := LoadCatalog(data, nil)
	if err != nil {
		return 0
	}
	if catalog == nil {
		return 0
	}
	return 1
}

// FuzzKeyValues is the legacy go-fuzz harness entry point for the
// envelope-free KV decoder, the shape shortcuts.vdf is stored in.
func FuzzKeyValues(data []byte) int {
	if _, err := ParseKeyValues(data, nil); err != nil {
		return 0
	}
	return 1
}
