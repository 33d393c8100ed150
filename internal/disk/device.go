package disk

import "io"

// DefaultSectorSize is assumed when a device does not report its sector
// size.
const DefaultSectorSize = 512

// Device is a read-only handle to a raw disk, volume, or image file.
type Device interface {
	io.ReaderAt
	io.Closer
}

// ReadSectors reads count bytes starting at the given sector index.
func ReadSectors(d Device, lba uint64, sectorSize uint32, count int) ([]byte, error) {
	buf := make([]byte, count)
	n, err := d.ReadAt(buf, int64(lba)*int64(sectorSize))
	if err != nil && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}
