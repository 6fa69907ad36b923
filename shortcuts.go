// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vdf

// Shortcut is a user-defined non-Steam launcher entry extracted from a
// parsed shortcuts.vdf.
type Shortcut struct {
	ID   uint32
	Name string
}

// ExtractShortcuts locates the top-level "shortcuts" entry in kv and
// builds a mapping from non-Steam app id to Shortcut. Each child of
// "shortcuts" must be a KeyValue containing an "appid" (Int32) and an
// "AppName" (String or WideString); children missing or mistyping either
// field are skipped silently rather than causing an error.
func ExtractShortcuts(kv KeyValue) map[uint32]Shortcut {
	result := make(map[uint32]Shortcut)

	raw, ok := kv["shortcuts"]
	if !ok {
		return result
	}
	shortcuts, ok := raw.(KeyValue)
	if !ok {
		return result
	}

	for _, entry := range shortcuts {
		shortcut, ok := entry.(KeyValue)
		if !ok {
			continue
		}

		appIDValue, ok := shortcut["appid"]
		if !ok {
			continue
		}
		appID, ok := appIDValue.(Int32Value)
		if !ok {
			continue
		}

		nameValue, ok := shortcut["AppName"]
		if !ok {
			continue
		}
		name, ok := stringOf(nameValue)
		if !ok {
			continue
		}

		id := ClampI32ToU24(int32(appID))
		result[id] = Shortcut{ID: id, Name: name}
	}

	return result
}

// ClampI32ToU24 masks value down to its low 24 bits, the transform Steam
// applies to an Int32 "appid" to derive the stable id of a non-Steam
// shortcut.
func ClampI32ToU24(value int32) uint32 {
	return uint32(value) & 0x00FFFFFF
}
