package lba

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport renders a resolution as a deterministic multi-line report.
// A sparse hole is a valid terminal outcome and gets its own message, not
// an error. When the partition start could not be determined, the absolute
// LBA is only partition-relative and the report says so.
func WriteReport(w io.Writer, res *Resolution) {
	fmt.Fprintf(w, "File: %s\n", res.Path)
	fmt.Fprintf(w, "Offset: %d\n", res.Offset)
	fmt.Fprintln(w, strings.Repeat("-", 40))

	if res.Hole {
		fmt.Fprintf(w, "Offset %d is not mapped to any physical block (sparse hole).\n", res.Offset)
		return
	}

	geom := res.Geometry
	addr := res.Addr

	fmt.Fprintf(w, "Allocation Unit Size: %d bytes\n", geom.UnitSize)
	fmt.Fprintf(w, "Sector Size: %d bytes\n", geom.SectorSize)
	fmt.Fprintf(w, "Physical Byte Offset: %d\n", addr.PhysicalByteOffset)
	fmt.Fprintf(w, "LBA (relative to filesystem): %d\n", addr.FSRelativeLBA)
	fmt.Fprintf(w, "Partition Start LBA:          %d\n", addr.PartitionStartLBA)
	fmt.Fprintf(w, "Absolute LBA on Disk:         %d\n", addr.AbsoluteLBA)

	if !geom.PartitionStartKnown {
		fmt.Fprintln(w, "Warning: partition start unknown; absolute LBA is relative to the partition, not the disk.")
	}
}
