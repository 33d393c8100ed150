// Copyright (c) 2025 the libutils authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

//go:build linux

package lba

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// FIEMAP constants from <linux/fiemap.h> and <linux/fs.h>; x/sys/unix does
// not export them.
const (
	fsIocFiemap    = 0xc020660b // _IOWR('f', 11, struct fiemap)
	fiemapFlagSync = 0x1
)

// maxProbeExtents bounds the FIEMAP reply buffer. A one-byte probe can
// intersect at most one extent, so the bound is generous; the containment
// check below asserts it rather than assuming it.
const maxProbeExtents = 16

// fiemap mirrors struct fiemap from <linux/fiemap.h>, with the extent array
// allocated inline so a single ioctl fills both.
type fiemap struct {
	Start         uint64
	Length        uint64
	Flags         uint32
	MappedExtents uint32
	ExtentCount   uint32
	Reserved      uint32
	Extents       [maxProbeExtents]fiemapExtent
}

// fiemapExtent mirrors struct fiemap_extent from <linux/fiemap.h>.
type fiemapExtent struct {
	Logical    uint64
	Physical   uint64
	Length     uint64
	Reserved64 [2]uint64
	Flags      uint32
	Reserved   [3]uint32
}

func (r *Resolver) resolve(path string, offset uint64) (*Resolution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if offset >= uint64(st.Size) {
		return nil, &OffsetOutOfRangeError{Offset: offset, Size: uint64(st.Size)}
	}

	geom := r.geometry(&st)

	rec, hole, err := probeExtent(f, offset)
	if err != nil {
		return nil, &ExtentQueryError{Path: path, Err: err}
	}

	res := &Resolution{Path: path, Offset: offset, Geometry: geom, Hole: hole}
	if hole {
		r.log.Debugf("offset %d of %s falls in a sparse hole", offset, path)
		return res, nil
	}

	r.log.Debugf("extent for offset %d: logical=%d physical=%d length=%d",
		offset, rec.Logical, rec.Physical, rec.Length)

	addr := Calculate(rec, geom, offset)
	res.Addr = &addr
	return res, nil
}

// probeExtent asks the filesystem for the extent mapping of a single byte
// at offset. FIEMAP_FLAG_SYNC forces dirty extents to be flushed first, so
// the reply reflects on-disk state even right after a write.
func probeExtent(f *os.File, offset uint64) (ExtentRecord, bool, error) {
	probe := fiemap{
		Start:       offset,
		Length:      1,
		Flags:       fiemapFlagSync,
		ExtentCount: maxProbeExtents,
	}

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), fsIocFiemap, uintptr(unsafe.Pointer(&probe)))
	if errno != 0 {
		return ExtentRecord{}, false, fmt.Errorf("ioctl(FS_IOC_FIEMAP): %w", errno)
	}

	// No extent intersects the probed byte: sparse hole.
	if probe.MappedExtents == 0 {
		return ExtentRecord{}, true, nil
	}

	ext := probe.Extents[0]
	if ext.Logical > offset {
		// The filesystem reported the next extent after a hole.
		return ExtentRecord{}, true, nil
	}
	if offset >= ext.Logical+ext.Length {
		return ExtentRecord{}, false, fmt.Errorf("extent [%d,%d) does not contain offset %d",
			ext.Logical, ext.Logical+ext.Length, offset)
	}

	return ExtentRecord{
		Logical:  ext.Logical,
		Physical: ext.Physical,
		Length:   ext.Length,
	}, false, nil
}
