package lba

// Calculate combines an extent and the volume geometry into the final
// address for offset. It is pure arithmetic: the extent is assumed to
// contain the offset and the geometry to carry a non-zero sector size, both
// guaranteed by the resolver before calling.
func Calculate(extent ExtentRecord, geom VolumeGeometry, offset uint64) ResolvedAddress {
	phys := extent.Physical + (offset - extent.Logical)
	fsLBA := phys / uint64(geom.SectorSize)
	partLBA := geom.PartitionStartOffset / uint64(geom.SectorSize)

	return ResolvedAddress{
		PhysicalByteOffset: phys,
		FSRelativeLBA:      fsLBA,
		PartitionStartLBA:  partLBA,
		AbsoluteLBA:        fsLBA + partLBA,
	}
}
