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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/theplow-kwak/libutils/internal/lba"
	"github.com/theplow-kwak/libutils/internal/logger"
	"github.com/theplow-kwak/libutils/pkg/util/format"
)

func DefineResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <file> <offset>",
		Short: "Resolve a file byte offset to its absolute disk LBA",
		Long: `The 'resolve' command maps a byte offset within a regular file down through
the filesystem extent map and partition layout to the absolute sector address
(LBA) on the underlying physical disk. Offsets may be decimal or 0x-prefixed
hexadecimal. Querying volume metadata may require elevated privileges.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         RunResolve,
	}

	cmd.Flags().String("log-level", "INFO", "log verbosity (DEBUG, INFO, WARN, ERROR)")

	return cmd
}

func RunResolve(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	offset, err := format.ParseOffset(args[1])
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", args[1], err)
	}

	level, _ := cmd.Flags().GetString("log-level")
	log := logger.Default(logger.ParseLevel(level))

	res, err := lba.NewResolver(log).Resolve(path, offset)
	if err != nil {
		var vqe *lba.VolumeQueryError
		if errors.As(err, &vqe) {
			log.Warn("volume metadata queries usually require elevated privileges")
		}
		return err
	}

	lba.WriteReport(os.Stdout, res)
	return nil
}
