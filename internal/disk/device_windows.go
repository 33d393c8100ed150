//go:build windows
// +build windows

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
package disk

import (
	"fmt"
	"io"
	"syscall"

	"golang.org/x/sys/windows"
)

// windowsDevice reads raw disks and volumes. Device reads on Windows must
// be sector-aligned, so ReadAt widens every request to sector boundaries
// and copies out the wanted slice.
type windowsDevice struct {
	handle windows.Handle
}

// Open opens a disk or volume device path (\\.\PhysicalDrive0, \\.\C:) or
// a plain image file for raw reading.
func Open(path string) (Device, error) {
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}

	handle, err := windows.CreateFile(
		pathp,
		windows.GENERIC_READ,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	return &windowsDevice{handle: handle}, nil
}

func (d *windowsDevice) ReadAt(p []byte, off int64) (int, error) {
	alignedOffset := off / DefaultSectorSize * DefaultSectorSize
	alignmentDiff := int(off - alignedOffset)
	alignedSize := ((len(p) + alignmentDiff + DefaultSectorSize - 1) / DefaultSectorSize) * DefaultSectorSize

	buf := make([]byte, alignedSize)

	var bytesRead uint32
	ov := new(windows.Overlapped)
	ov.Offset = uint32(alignedOffset)
	ov.OffsetHigh = uint32(alignedOffset >> 32)

	err := windows.ReadFile(d.handle, buf, &bytesRead, ov)
	if err != nil {
		if err == syscall.ERROR_IO_PENDING {
			err = windows.GetOverlappedResult(d.handle, ov, &bytesRead, true)
		}
		if err != nil {
			return 0, fmt.Errorf("aligned read failed: %w", err)
		}
	}

	if int(bytesRead) <= alignmentDiff {
		return 0, io.EOF
	}

	n := copy(p, buf[alignmentDiff:bytesRead])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (d *windowsDevice) Close() error {
	return windows.CloseHandle(d.handle)
}
