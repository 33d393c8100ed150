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

// Package lba resolves a byte offset within a regular file to the absolute
// sector address of that byte on the underlying physical disk. It walks the
// storage stack in four steps: locate the extent containing the offset,
// query the volume geometry, combine both into an address, and format the
// result.
package lba

import (
	"io"

	"github.com/theplow-kwak/libutils/internal/logger"
)

// Resolver performs single-shot offset-to-LBA queries. Each call owns its
// file and device handles exclusively and releases them before returning;
// a Resolver holds no state between calls and may be reused.
type Resolver struct {
	log  *logger.Logger
	topo BlockTopology
}

func NewResolver(log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.New(io.Discard, logger.InfoLevel)
	}
	return &Resolver{log: log}
}

// SetTopology replaces the default block-device topology lookup. Only the
// sysfs-scanning backend consults it.
func (r *Resolver) SetTopology(t BlockTopology) { r.topo = t }

// Resolve maps the byte at offset within the file at path to its physical
// disk address. The returned Resolution carries either a ResolvedAddress or
// a sparse-hole indication; every failure is one of the typed errors of
// this package (OpenError, OffsetOutOfRangeError, ExtentQueryError,
// VolumeQueryError) wrapping the originating OS error.
func (r *Resolver) Resolve(path string, offset uint64) (*Resolution, error) {
	return r.resolve(path, offset)
}
