//go:build linux

package lba

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func writeSysfsEntry(t *testing.T, root, name, dev, start string) {
	t.Helper()

	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dev"), []byte(dev+"\n"), 0644))
	if start != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "start"), []byte(start+"\n"), 0644))
	}
}

func TestSysfsTopologyPartitionStart(t *testing.T) {
	root := t.TempDir()
	writeSysfsEntry(t, root, "sda", "8:0", "")
	writeSysfsEntry(t, root, "sda1", "8:1", "2048")
	writeSysfsEntry(t, root, "sda2", "8:2", "1050624")

	topo := SysfsTopology{Root: root}

	start, found, err := topo.PartitionStart(unix.Mkdev(8, 1))
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(2048*512), start)

	start, found, err = topo.PartitionStart(unix.Mkdev(8, 2))
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(1050624*512), start)
}

func TestSysfsTopologyWholeDisk(t *testing.T) {
	root := t.TempDir()
	writeSysfsEntry(t, root, "sda", "8:0", "")

	start, found, err := SysfsTopology{Root: root}.PartitionStart(unix.Mkdev(8, 0))
	require.NoError(t, err)
	require.True(t, found)
	require.Zero(t, start)
}

func TestSysfsTopologyNoMatch(t *testing.T) {
	root := t.TempDir()
	writeSysfsEntry(t, root, "sda1", "8:1", "2048")

	_, found, err := SysfsTopology{Root: root}.PartitionStart(unix.Mkdev(259, 3))
	require.NoError(t, err)
	require.False(t, found)
}

func TestSysfsTopologyMalformedStart(t *testing.T) {
	root := t.TempDir()
	writeSysfsEntry(t, root, "sda1", "8:1", "not-a-number")

	_, _, err := SysfsTopology{Root: root}.PartitionStart(unix.Mkdev(8, 1))
	require.Error(t, err)
}

func TestSysfsTopologyMissingRoot(t *testing.T) {
	_, _, err := SysfsTopology{Root: filepath.Join(t.TempDir(), "nope")}.PartitionStart(unix.Mkdev(8, 1))
	require.Error(t, err)
}

func TestGeometryDegradedWithoutTopologyMatch(t *testing.T) {
	root := t.TempDir() // empty: no block devices at all

	r := NewResolver(nil)
	r.SetTopology(SysfsTopology{Root: root})

	st := unix.Stat_t{Dev: unix.Mkdev(8, 1), Blksize: 4096}
	geom := r.geometry(&st)

	require.Equal(t, uint32(4096), geom.UnitSize)
	require.Equal(t, uint32(DefaultSectorSize), geom.SectorSize)
	require.False(t, geom.PartitionStartKnown)
	require.Zero(t, geom.PartitionStartOffset)
}

func TestGeometryWithTopologyMatch(t *testing.T) {
	root := t.TempDir()
	writeSysfsEntry(t, root, "nvme0n1p2", "259:2", "616448")

	r := NewResolver(nil)
	r.SetTopology(SysfsTopology{Root: root})

	st := unix.Stat_t{Dev: unix.Mkdev(259, 2), Blksize: 4096}
	geom := r.geometry(&st)

	require.True(t, geom.PartitionStartKnown)
	require.Equal(t, uint64(616448*512), geom.PartitionStartOffset)
}
