//go:build linux

package lba

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// The FIEMAP request number encodes the size of the fixed struct header
// (_IOWR('f', 11, struct fiemap), where the kernel struct ends before the
// flexible extent array). Re-derive it from the encoding rules so a drift in
// the mirror structs shows up here.
func TestFiemapIoctlEncoding(t *testing.T) {
	headerSize := unsafe.Offsetof(fiemap{}.Extents)
	require.Equal(t, uintptr(32), headerSize)
	require.Equal(t, uintptr(56), unsafe.Sizeof(fiemapExtent{}))

	const (
		iocWrite = 1
		iocRead  = 2
	)
	want := uintptr(iocRead|iocWrite)<<30 | headerSize<<16 | uintptr('f')<<8 | 11
	require.Equal(t, uintptr(fsIocFiemap), want)
	require.Equal(t, 0x1, fiemapFlagSync)
}

func TestResolveMissingFile(t *testing.T) {
	r := NewResolver(nil)

	_, err := r.Resolve(filepath.Join(t.TempDir(), "missing"), 0)
	require.Error(t, err)

	var oe *OpenError
	require.True(t, errors.As(err, &oe))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveOffsetBeyondEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 8), 0644))

	r := NewResolver(nil)

	// The range check fires before any extent query, so no filesystem
	// FIEMAP support is needed here.
	for _, off := range []uint64{8, 9, 1 << 30} {
		_, err := r.Resolve(path, off)
		require.Error(t, err)

		var re *OffsetOutOfRangeError
		require.True(t, errors.As(err, &re))
		require.Equal(t, off, re.Offset)
		require.Equal(t, uint64(8), re.Size)
	}
}

func TestResolveEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := NewResolver(nil).Resolve(path, 0)

	var re *OffsetOutOfRangeError
	require.True(t, errors.As(err, &re))
}
