//go:build linux

package lba

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// sysfsBlockDir is where the kernel exposes block-device topology.
const sysfsBlockDir = "/sys/class/block"

// geometry derives the volume geometry from the stat of the probed file.
// The allocation unit comes from st_blksize; the sector size is fixed at
// 512 bytes, matching the unit of the sysfs `start` attribute. A failed or
// unmatched topology scan degrades the geometry (partition start unknown)
// instead of failing the resolution.
func (r *Resolver) geometry(st *unix.Stat_t) VolumeGeometry {
	geom := VolumeGeometry{
		UnitSize:   uint32(st.Blksize),
		SectorSize: DefaultSectorSize,
	}

	topo := r.topo
	if topo == nil {
		topo = SysfsTopology{Root: sysfsBlockDir}
	}

	start, found, err := topo.PartitionStart(uint64(st.Dev))
	switch {
	case err != nil:
		r.log.Warnf("block topology scan failed: %v; reporting partition-relative LBA only", err)
	case !found:
		r.log.Warnf("device %d:%d not found under %s; reporting partition-relative LBA only",
			unix.Major(uint64(st.Dev)), unix.Minor(uint64(st.Dev)), sysfsBlockDir)
	default:
		geom.PartitionStartOffset = start
		geom.PartitionStartKnown = true
	}
	return geom
}

// SysfsTopology locates partition starts by scanning the sysfs block class
// directory: every entry's `dev` attribute is compared against the wanted
// device number, and the matching entry's `start` attribute gives the
// partition's first sector.
type SysfsTopology struct {
	Root string
}

func (t SysfsTopology) PartitionStart(dev uint64) (uint64, bool, error) {
	entries, err := os.ReadDir(t.Root)
	if err != nil {
		return 0, false, fmt.Errorf("failed to read %s: %w", t.Root, err)
	}

	want := fmt.Sprintf("%d:%d", unix.Major(dev), unix.Minor(dev))
	for _, e := range entries {
		raw, err := os.ReadFile(filepath.Join(t.Root, e.Name(), "dev"))
		if err != nil || strings.TrimSpace(string(raw)) != want {
			continue
		}

		raw, err = os.ReadFile(filepath.Join(t.Root, e.Name(), "start"))
		if err != nil {
			// Whole-disk devices carry no start attribute; the
			// filesystem genuinely begins at sector 0.
			return 0, true, nil
		}

		start, err := strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("malformed start attribute for %s: %w", e.Name(), err)
		}
		return start * DefaultSectorSize, true, nil
	}
	return 0, false, nil
}
