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

//go:build windows

package lba

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const fsctlGetRetrievalPointers = 0x00090073

// maxRetrievalRuns bounds the FSCTL_GET_RETRIEVAL_POINTERS reply buffer.
// The query starts at the probed VCN, so the first run already contains it;
// ERROR_MORE_DATA on a fragmented file is therefore harmless.
const maxRetrievalRuns = 20

// startingVCNInput mirrors STARTING_VCN_INPUT_BUFFER.
type startingVCNInput struct {
	StartingVcn int64
}

// retrievalRun mirrors one entry of RETRIEVAL_POINTERS_BUFFER.Extents.
type retrievalRun struct {
	NextVcn int64
	Lcn     int64
}

// retrievalPointers mirrors RETRIEVAL_POINTERS_BUFFER with an inline
// run array.
type retrievalPointers struct {
	ExtentCount uint32
	_           uint32
	StartingVcn int64
	Extents     [maxRetrievalRuns]retrievalRun
}

func (r *Resolver) resolve(path string, offset uint64) (*Resolution, error) {
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	h, err := windows.CreateFile(pathp, windows.GENERIC_READ,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE, nil,
		windows.OPEN_EXISTING, 0, 0)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer windows.CloseHandle(h)

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	size := uint64(info.FileSizeHigh)<<32 | uint64(info.FileSizeLow)
	if offset >= size {
		return nil, &OffsetOutOfRangeError{Offset: offset, Size: size}
	}

	geom, err := r.geometry(path)
	if err != nil {
		return nil, err
	}

	rec, hole, err := locateCluster(h, offset, geom.UnitSize)
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

// locateCluster resolves the Virtual Cluster Number containing offset to
// its Logical Cluster Number via a retrieval-pointer query starting at that
// VCN, and adapts the covering run into a byte-addressed ExtentRecord.
func locateCluster(h windows.Handle, offset uint64, clusterSize uint32) (ExtentRecord, bool, error) {
	vcn := int64(offset / uint64(clusterSize))

	in := startingVCNInput{StartingVcn: vcn}
	var out retrievalPointers
	var ret uint32

	err := windows.DeviceIoControl(h, fsctlGetRetrievalPointers,
		(*byte)(unsafe.Pointer(&in)), uint32(unsafe.Sizeof(in)),
		(*byte)(unsafe.Pointer(&out)), uint32(unsafe.Sizeof(out)),
		&ret, nil)
	if err != nil && err != windows.ERROR_MORE_DATA {
		if err == windows.ERROR_HANDLE_EOF {
			// Resident or fully sparse stream: no allocated clusters.
			return ExtentRecord{}, true, nil
		}
		return ExtentRecord{}, false, fmt.Errorf("FSCTL_GET_RETRIEVAL_POINTERS: %w", err)
	}

	if out.ExtentCount == 0 {
		return ExtentRecord{}, true, nil
	}

	n := out.ExtentCount
	if n > maxRetrievalRuns {
		n = maxRetrievalRuns
	}
	runs := make([]clusterRun, n)
	for i := range runs {
		runs[i] = clusterRun{NextVCN: out.Extents[i].NextVcn, LCN: out.Extents[i].Lcn}
	}
	return recordFromRuns(runs, out.StartingVcn, vcn, clusterSize)
}
