package lba

// DefaultSectorSize is the sector size assumed when the platform does not
// report one. Block-device topology on Linux expresses partition starts in
// units of 512-byte sectors regardless of the device's logical block size.
const DefaultSectorSize = 512

// ExtentRecord describes one contiguous run mapping a region of a file to a
// region of the underlying volume. All fields are byte quantities; cluster
// based backends convert cluster numbers before constructing a record.
type ExtentRecord struct {
	Logical  uint64 // file-relative start of the run, in bytes
	Physical uint64 // volume-relative start of the run, in bytes
	Length   uint64 // run length, in bytes
}

// VolumeGeometry carries the allocation and addressing parameters of the
// volume holding the probed file.
type VolumeGeometry struct {
	UnitSize   uint32 // allocation unit (cluster or block) size, in bytes
	SectorSize uint32 // device sector size, in bytes

	// PartitionStartOffset is the byte offset of the partition's first
	// sector from the start of its physical disk. When the start could not
	// be determined, it is zero and PartitionStartKnown is false; absolute
	// LBA values computed from such a geometry are relative to the
	// partition, not the disk.
	PartitionStartOffset uint64
	PartitionStartKnown  bool
}

// ResolvedAddress is the output of the LBA calculation. Values are derived
// once and never mutated.
type ResolvedAddress struct {
	PhysicalByteOffset uint64 // byte address of the offset on the volume
	FSRelativeLBA      uint64 // sector index relative to the filesystem
	PartitionStartLBA  uint64 // sector index of the partition on its disk
	AbsoluteLBA        uint64 // sector index on the physical disk
}

// Resolution is the result of a single offset-to-LBA query. When the probed
// offset falls into a sparse hole, Hole is true and Addr is nil.
type Resolution struct {
	Path     string
	Offset   uint64
	Geometry VolumeGeometry
	Hole     bool
	Addr     *ResolvedAddress
}

// BlockTopology resolves the on-disk start of the block device backing a
// file. Platforms that expose the partition offset through a direct device
// query do not need it; the sysfs-scanning backend implements it by
// enumerating known block devices.
type BlockTopology interface {
	// PartitionStart returns the byte offset of the partition identified by
	// dev on its containing disk. found is false when the device is not
	// present in the topology, which callers must treat as a degraded
	// result rather than a zero start.
	PartitionStart(dev uint64) (start uint64, found bool, err error)
}
