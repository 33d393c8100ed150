//go:build !windows
// +build !windows

package disk

import "os"

// Open opens a block device or image file for raw reading.
func Open(path string) (Device, error) {
	return os.Open(path)
}
