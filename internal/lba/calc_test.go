package lba

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	// 10 MiB file on a 4096-byte-cluster, 512-byte-sector volume whose
	// partition starts 2048 sectors into the disk.
	extent := ExtentRecord{Logical: 0, Physical: 1048576, Length: 4096}
	geom := VolumeGeometry{
		UnitSize:             4096,
		SectorSize:           512,
		PartitionStartOffset: 2048 * 512,
		PartitionStartKnown:  true,
	}

	addr := Calculate(extent, geom, 4096)

	require.Equal(t, uint64(1048576+4096), addr.PhysicalByteOffset)
	require.Equal(t, uint64(2056), addr.FSRelativeLBA) // 1052672 / 512
	require.Equal(t, uint64(2048), addr.PartitionStartLBA)
	require.Equal(t, uint64(4104), addr.AbsoluteLBA)
}

func TestCalculateOffsetWithinExtent(t *testing.T) {
	extent := ExtentRecord{Logical: 8192, Physical: 1 << 30, Length: 65536}
	geom := VolumeGeometry{UnitSize: 4096, SectorSize: 512}

	for _, off := range []uint64{8192, 8193, 12288, 8192 + 65535} {
		addr := Calculate(extent, geom, off)
		require.Equal(t, extent.Physical+(off-extent.Logical), addr.PhysicalByteOffset)
	}
}

func TestCalculateFloorDivision(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		extent := ExtentRecord{
			Logical:  uint64(rnd.Int63n(1 << 40)),
			Physical: uint64(rnd.Int63n(1 << 40)),
			Length:   uint64(rnd.Int63n(1<<20) + 1),
		}
		geom := VolumeGeometry{
			UnitSize:             4096,
			SectorSize:           512,
			PartitionStartOffset: uint64(rnd.Int63n(1<<30)) &^ 511,
		}
		offset := extent.Logical + uint64(rnd.Int63n(int64(extent.Length)))

		addr := Calculate(extent, geom, offset)

		ss := uint64(geom.SectorSize)
		if addr.FSRelativeLBA*ss > addr.PhysicalByteOffset {
			t.Fatalf("LBA %d overshoots byte offset %d", addr.FSRelativeLBA, addr.PhysicalByteOffset)
		}
		if (addr.FSRelativeLBA+1)*ss <= addr.PhysicalByteOffset {
			t.Fatalf("LBA %d undershoots byte offset %d", addr.FSRelativeLBA, addr.PhysicalByteOffset)
		}
		if addr.AbsoluteLBA != addr.FSRelativeLBA+addr.PartitionStartLBA {
			t.Fatalf("absolute LBA %d != %d + %d", addr.AbsoluteLBA, addr.FSRelativeLBA, addr.PartitionStartLBA)
		}
	}
}

func TestCalculateNoOverflowNearMaxFileSize(t *testing.T) {
	// Offsets near the maximum representable file size must not wrap.
	extent := ExtentRecord{Logical: 0, Physical: 1 << 62, Length: 1 << 62}
	geom := VolumeGeometry{UnitSize: 4096, SectorSize: 512}

	addr := Calculate(extent, geom, (1<<62)-1)
	require.Equal(t, uint64((1<<62)+(1<<62)-1), addr.PhysicalByteOffset)
	require.Equal(t, addr.PhysicalByteOffset/512, addr.FSRelativeLBA)
}
