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
package sysinfo

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// SysInfo holds the basic operating system details.
type SysInfo struct {
	Name    string // "linux", "darwin", "windows"
	Release string // marketing name or distribution of the OS
	Version string // specific build or kernel version
}

// Stat gathers operating system information for the running platform.
func Stat() (*SysInfo, error) {
	info := &SysInfo{
		Name:    runtime.GOOS,
		Release: "unknown",
		Version: "unknown",
	}

	switch runtime.GOOS {
	case "linux":
		info.Release, info.Version = linuxInfo()
	case "darwin":
		info.Release, info.Version = darwinInfo()
	case "windows":
		info.Release, info.Version = windowsInfo()
	}
	return info, nil
}

// linuxInfo parses /etc/os-release, the common standard for OS
// identification data.
func linuxInfo() (string, string) {
	f, err := os.Open("/etc/os-release")
	if err != nil {
		return "unknown", "unknown"
	}
	defer f.Close()

	name, version := "unknown", "unknown"
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if v, ok := strings.CutPrefix(line, "NAME="); ok {
			name = strings.Trim(v, `"`)
		}
		if v, ok := strings.CutPrefix(line, "VERSION="); ok {
			version = strings.Trim(v, `"`)
		}
	}
	return name, version
}

// darwinInfo parses the output of sw_vers.
func darwinInfo() (string, string) {
	output, err := exec.Command("sw_vers").Output()
	if err != nil {
		return "macOS", "unknown"
	}

	name, version := "macOS", "unknown"
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if v, ok := strings.CutPrefix(line, "ProductName:"); ok {
			name = strings.TrimSpace(v)
		}
		if v, ok := strings.CutPrefix(line, "ProductVersion:"); ok {
			version = strings.TrimSpace(v)
		}
	}
	return name, version
}

// windowsInfo returns the version string reported by `cmd /c ver`.
func windowsInfo() (string, string) {
	output, err := exec.Command("cmd", "/c", "ver").Output()
	if err != nil {
		return "Windows", "unknown"
	}
	return "Windows", strings.TrimSpace(string(output))
}
