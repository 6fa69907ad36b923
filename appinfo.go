// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vdf

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/noaione/steamvdf/internal/vlog"
)

// Envelope magic values for appinfo.vdf, the little-endian u32 at byte 0.
const (
	MagicV27 uint32 = 0x07564427
	MagicV28 uint32 = 0x07564428
	MagicV29 uint32 = 0x07564429
)

const checksumSize = 20

// App is a single Steam application record decoded out of appinfo.vdf.
type App struct {
	ID           uint32
	Size         uint32
	State        uint32
	LastUpdate   uint32
	AccessToken  uint64
	ChecksumText [checksumSize]byte
	// ChecksumBinary is present iff the enclosing catalog's version is not
	// MagicV27.
	ChecksumBinary *[checksumSize]byte
	ChangeNumber   uint32
	KeyValues      KeyValue
}

// AppCatalog is the immutable, in-memory result of decoding an
// appinfo.vdf file. It is built once and shared read-only; there are no
// exported mutation methods.
type AppCatalog struct {
	Version  uint32
	Universe uint32
	Apps     map[uint32]*App
}

// LoadOptions configures a catalog load.
type LoadOptions struct {
	// Logger receives load-time diagnostics, including the id of an app
	// record that fails to decode just before that error is returned. Nil
	// disables logging.
	Logger vlog.Logger
}

func (o *LoadOptions) helper() *vlog.Helper {
	if o == nil || o.Logger == nil {
		return vlog.NewHelper(nil)
	}
	return vlog.NewHelper(o.Logger)
}

// LoadCatalogFile memory-maps path and decodes it as appinfo.vdf.
func LoadCatalogFile(path string, opts *LoadOptions) (*AppCatalog, error) {
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

	return LoadCatalog([]byte(data), opts)
}

// LoadCatalog decodes an in-memory appinfo.vdf buffer into an AppCatalog.
// On any error the entire parse is discarded; no partial catalog is
// returned.
func LoadCatalog(data []byte, opts *LoadOptions) (*AppCatalog, error) {
	log := opts.helper()
	c := newCursor(data)

	version, err := c.u32LE()
	if err != nil {
		return nil, err
	}
	if version != MagicV27 && version != MagicV28 && version != MagicV29 {
		return nil, errUnknownMagic(version)
	}

	universe, err := c.u32LE()
	if err != nil {
		return nil, err
	}

	kvOpts := &KeyValueOptions{}
	if version == MagicV29 {
		pool, err := readV29StringPool(c)
		if err != nil {
			return nil, err
		}
		kvOpts.StringPool = pool
		log.Debugf("loaded string pool with %d entries", len(pool))
	}

	catalog := &AppCatalog{
		Version:  version,
		Universe: universe,
		Apps:     make(map[uint32]*App),
	}

	for {
		id, err := c.u32LE()
		if err != nil {
			return nil, err
		}
		if id == 0 {
			break
		}

		app, err := readAppRecord(c, id, version, kvOpts)
		if err != nil {
			log.Errorf("app %d: %v", id, err)
			return nil, err
		}
		catalog.Apps[id] = app
	}

	return catalog, nil
}

// readV29StringPool reads the i64 absolute offset to the string-pool
// region, jumps there, decodes the pool, then restores the cursor so the
// app record stream can be read contiguously from where it left off.
func readV29StringPool(c *cursor) ([]string, error) {
	poolOffset, err := c.i64LE()
	if err != nil {
		return nil, err
	}

	savedPos := c.tell()
	if err := c.seek(int(poolOffset)); err != nil {
		return nil, err
	}

	pool, err := readStringPool(c)
	if err != nil {
		return nil, err
	}

	if err := c.seek(savedPos); err != nil {
		return nil, err
	}
	return pool, nil
}

// readAppRecord decodes one per-app record. The field order on the wire
// is fixed and must be honoured bit-exactly: checksum_txt precedes
// change_number, which precedes the optional checksum_bin.
func readAppRecord(c *cursor, id uint32, version uint32, kvOpts *KeyValueOptions) (*App, error) {
	size, err := c.u32LE()
	if err != nil {
		return nil, err
	}
	state, err := c.u32LE()
	if err != nil {
		return nil, err
	}
	lastUpdate, err := c.u32LE()
	if err != nil {
		return nil, err
	}
	accessToken, err := c.u64LE()
	if err != nil {
		return nil, err
	}

	checksumTxtBytes, err := c.fixed(checksumSize)
	if err != nil {
		return nil, err
	}
	var checksumTxt [checksumSize]byte
	copy(checksumTxt[:], checksumTxtBytes)

	changeNumber, err := c.u32LE()
	if err != nil {
		return nil, err
	}

	var checksumBin *[checksumSize]byte
	if version != MagicV27 {
		checksumBinBytes, err := c.fixed(checksumSize)
		if err != nil {
			return nil, err
		}
		var buf [checksumSize]byte
		copy(buf[:], checksumBinBytes)
		checksumBin = &buf
	}

	kv, err := decodeKV(c, kvOpts, 0)
	if err != nil {
		return nil, err
	}

	return &App{
		ID:             id,
		Size:           size,
		State:          state,
		LastUpdate:     lastUpdate,
		AccessToken:    accessToken,
		ChecksumText:   checksumTxt,
		ChecksumBinary: checksumBin,
		ChangeNumber:   changeNumber,
		KeyValues:      kv,
	}, nil
}
