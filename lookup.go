// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vdf

// Get performs a recursive-descent lookup: for keys[:len(keys)-1], each
// key must resolve to a KeyValue child of the current map; the last key
// may resolve to any Value. It returns (nil, false) if the path does not
// exist, any intermediate step is not a KeyValue, or the path is empty.
// It never panics on a mistyped intermediate value.
func (a *App) Get(keys ...string) (Value, bool) {
	return findKeys(a.KeyValues, keys)
}

func findKeys(kv KeyValue, keys []string) (Value, bool) {
	if len(keys) == 0 {
		return nil, false
	}

	value, ok := kv[keys[0]]
	if !ok {
		return nil, false
	}
	if len(keys) == 1 {
		return value, true
	}

	child, ok := value.(KeyValue)
	if !ok {
		return nil, false
	}
	return findKeys(child, keys[1:])
}

// Name returns the app's display name from
// ["appinfo", "common", "name"], or ("", false) if absent or of a
// non-string kind.
func (a *App) Name() (string, bool) {
	v, ok := a.Get("appinfo", "common", "name")
	if !ok {
		return "", false
	}
	return stringOf(v)
}

// LocalizedName returns a mapping from language tag (e.g. "english") to
// display name, built by walking
// ["appinfo", "common", "name_localized"]. Children that aren't a string
// or wide string are skipped rather than causing an error.
func (a *App) LocalizedName() map[string]string {
	names := make(map[string]string)

	v, ok := a.Get("appinfo", "common", "name_localized")
	if !ok {
		return names
	}
	localized, ok := v.(KeyValue)
	if !ok {
		return names
	}

	for lang, value := range localized {
		if s, ok := stringOf(value); ok {
			names[lang] = s
		}
	}
	return names
}

func stringOf(v Value) (string, bool) {
	switch s := v.(type) {
	case StringValue:
		return string(s), true
	case WideStringValue:
		return string(s), true
	default:
		return "", false
	}
}
