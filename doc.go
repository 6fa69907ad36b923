// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package vdf decodes Steam's binary Valve Data Format: the appinfo.vdf
// application catalog and the envelope-free shortcuts.vdf stream. It
// produces an immutable, in-memory tree of tagged values that the rest of
// a program can query by path; it performs no I/O beyond the initial file
// read and holds no mutable package-level state.
package vdf
