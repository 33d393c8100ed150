package lba

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorTypesAreDistinguishable(t *testing.T) {
	open := error(&OpenError{Path: "/x", Err: os.ErrNotExist})
	volume := error(&VolumeQueryError{Device: `\\.\C:`, Err: os.ErrPermission})
	extent := error(&ExtentQueryError{Path: "/x", Err: errors.New("ioctl failed")})
	rng := error(&OffsetOutOfRangeError{Offset: 100, Size: 10})

	var oe *OpenError
	require.True(t, errors.As(open, &oe))
	require.False(t, errors.As(volume, &oe))

	var ve *VolumeQueryError
	require.True(t, errors.As(volume, &ve))
	require.False(t, errors.As(open, &ve))

	var ee *ExtentQueryError
	require.True(t, errors.As(extent, &ee))

	var re *OffsetOutOfRangeError
	require.True(t, errors.As(rng, &re))
	require.Equal(t, uint64(100), re.Offset)
	require.Equal(t, uint64(10), re.Size)
}

func TestErrorsCarryOSCause(t *testing.T) {
	open := &OpenError{Path: "/missing", Err: os.ErrNotExist}
	require.ErrorIs(t, open, os.ErrNotExist)

	volume := &VolumeQueryError{Device: "/dev/sda", Err: os.ErrPermission}
	require.ErrorIs(t, volume, os.ErrPermission)
}
