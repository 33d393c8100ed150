//go:build windows

package lba

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/theplow-kwak/libutils/internal/disk"
)

const ioctlVolumeGetVolumeDiskExtents = 0x00560000

var (
	modkernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procGetDiskFreeSpaceW = modkernel32.NewProc("GetDiskFreeSpaceW")
)

// diskExtent mirrors DISK_EXTENT.
type diskExtent struct {
	DiskNumber     uint32
	_              uint32
	StartingOffset int64
	ExtentLength   int64
}

// volumeDiskExtents mirrors VOLUME_DISK_EXTENTS. One extent suffices for a
// simple volume; spanned volumes are out of scope.
type volumeDiskExtents struct {
	NumberOfDiskExtents uint32
	_                   uint32
	Extents             [1]diskExtent
}

// geometry resolves the volume containing path and queries its cluster and
// sector sizes plus the partition's starting byte offset on its physical
// disk. Opening the volume device requires elevated privileges; every
// failure here is a VolumeQueryError so callers can suggest them.
func (r *Resolver) geometry(path string) (VolumeGeometry, error) {
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return VolumeGeometry{}, &VolumeQueryError{Device: path, Err: err}
	}

	var buf [windows.MAX_PATH + 1]uint16
	if err := windows.GetVolumePathName(pathp, &buf[0], uint32(len(buf))); err != nil {
		return VolumeGeometry{}, &VolumeQueryError{Device: path, Err: err}
	}
	volRoot := windows.UTF16ToString(buf[:])

	sectorsPerCluster, bytesPerSector, err := getDiskFreeSpace(volRoot)
	if err != nil {
		return VolumeGeometry{}, &VolumeQueryError{Device: volRoot, Err: err}
	}

	device := disk.NormalizeVolumePath(volRoot)
	devp, err := windows.UTF16PtrFromString(device)
	if err != nil {
		return VolumeGeometry{}, &VolumeQueryError{Device: device, Err: err}
	}

	// Zero access rights suffice for metadata-only IOCTLs.
	vh, err := windows.CreateFile(devp, 0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE, nil,
		windows.OPEN_EXISTING, 0, 0)
	if err != nil {
		return VolumeGeometry{}, &VolumeQueryError{Device: device, Err: err}
	}
	defer windows.CloseHandle(vh)

	var ext volumeDiskExtents
	var ret uint32
	err = windows.DeviceIoControl(vh, ioctlVolumeGetVolumeDiskExtents, nil, 0,
		(*byte)(unsafe.Pointer(&ext)), uint32(unsafe.Sizeof(ext)), &ret, nil)
	if err != nil {
		return VolumeGeometry{}, &VolumeQueryError{Device: device, Err: err}
	}
	if ext.NumberOfDiskExtents == 0 {
		return VolumeGeometry{}, &VolumeQueryError{Device: device, Err: fmt.Errorf("volume reports no disk extents")}
	}

	return VolumeGeometry{
		UnitSize:             sectorsPerCluster * bytesPerSector,
		SectorSize:           bytesPerSector,
		PartitionStartOffset: uint64(ext.Extents[0].StartingOffset),
		PartitionStartKnown:  true,
	}, nil
}

func getDiskFreeSpace(root string) (sectorsPerCluster, bytesPerSector uint32, err error) {
	rootp, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return 0, 0, err
	}

	var freeClusters, totalClusters uint32
	r1, _, e1 := procGetDiskFreeSpaceW.Call(
		uintptr(unsafe.Pointer(rootp)),
		uintptr(unsafe.Pointer(&sectorsPerCluster)),
		uintptr(unsafe.Pointer(&bytesPerSector)),
		uintptr(unsafe.Pointer(&freeClusters)),
		uintptr(unsafe.Pointer(&totalClusters)))
	if r1 == 0 {
		return 0, 0, fmt.Errorf("GetDiskFreeSpace(%q): %w", root, e1)
	}
	return sectorsPerCluster, bytesPerSector, nil
}
