package lba

import "fmt"

// OpenError reports a file that could not be opened or stat'ed. The wrapped
// error carries the originating OS error code.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// OffsetOutOfRangeError reports a probe offset at or beyond the end of the
// file. It is raised before any extent query is attempted.
type OffsetOutOfRangeError struct {
	Offset uint64
	Size   uint64
}

func (e *OffsetOutOfRangeError) Error() string {
	return fmt.Sprintf("offset %d is beyond the end of the file (size %d)", e.Offset, e.Size)
}

// ExtentQueryError reports a failed or internally inconsistent extent query.
// The query is attempted exactly once; there are no retries.
type ExtentQueryError struct {
	Path string
	Err  error
}

func (e *ExtentQueryError) Error() string {
	return fmt.Sprintf("extent query for %q failed: %v", e.Path, e.Err)
}

func (e *ExtentQueryError) Unwrap() error { return e.Err }

// VolumeQueryError reports that volume or physical-disk metadata could not
// be obtained. Opening a volume device commonly requires elevated
// privileges, so this is kept distinct from OpenError.
type VolumeQueryError struct {
	Device string
	Err    error
}

func (e *VolumeQueryError) Error() string {
	return fmt.Sprintf("volume query for %q failed: %v", e.Device, e.Err)
}

func (e *VolumeQueryError) Unwrap() error { return e.Err }
