// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vdf

// readStringPool decodes the version-29 string-pool region: a u32 count
// followed by that many NUL-terminated UTF-8 strings laid out
// contiguously. The cursor must already be positioned at the start of the
// region (the pool's absolute offset), and is left just past it.
func readStringPool(c *cursor) ([]string, error) {
	count, err := c.u32LE()
	if err != nil {
		return nil, err
	}

	pool := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		s, err := c.utf8CString()
		if err != nil {
			return nil, err
		}
		pool = append(pool, s)
	}
	return pool, nil
}
