// Copyright (c) 2025 the libutils authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theplow-kwak/libutils/internal/disk"
	"github.com/theplow-kwak/libutils/pkg/util/format"
)

func DefineReadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <device> <lba>",
		Short: "Read raw sectors from a disk or volume device",
		Long: `The 'read' command reads sectors from a raw device (a disk number, a volume
like C:, or a device path such as /dev/sda) starting at the given LBA and
prints them as a hex dump. Reading raw devices requires elevated privileges.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         RunRead,
	}

	cmd.Flags().StringP("count", "c", "512", "number of bytes to read")
	cmd.Flags().String("sector-size", "512", "device sector size in bytes")

	return cmd
}

func RunRead(cmd *cobra.Command, args []string) error {
	path := disk.NormalizeDevicePath(args[0])

	lba, err := format.ParseOffset(args[1])
	if err != nil {
		return fmt.Errorf("invalid LBA %q: %w", args[1], err)
	}

	count, err := getBytesFlag(cmd, "count")
	if err != nil {
		return err
	}
	sectorSize, err := getBytesFlag(cmd, "sector-size")
	if err != nil {
		return err
	}
	if sectorSize == 0 {
		return fmt.Errorf("sector size must be non-zero")
	}

	dev, err := disk.Open(path)
	if err != nil {
		return err
	}
	defer dev.Close()

	data, err := disk.ReadSectors(dev, lba, uint32(sectorSize), int(count))
	if err != nil {
		return fmt.Errorf("failed to read %q at LBA %d: %w", path, lba, err)
	}

	fmt.Printf("Read %s from %s at LBA %d\n\n", format.FormatBytes(int64(len(data))), path, lba)
	format.Hexdump(os.Stdout, data, lba*sectorSize)
	return nil
}

func getBytesFlag(cmd *cobra.Command, name string) (uint64, error) {
	s, _ := cmd.Flags().GetString(name)

	v, err := format.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid value for --%s: %w", name, err)
	}
	return v, nil
}
