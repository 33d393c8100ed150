package disk

import (
	"runtime"
	"strconv"
	"strings"
	"unicode"
)

// NormalizeVolumePath checks if a given path is a Windows volume path
// and normalizes it to \\.\C: format if running on Windows.
// Otherwise, returns the path unchanged.
func NormalizeVolumePath(path string) string {
	if runtime.GOOS != "windows" {
		return path // Only normalize on Windows
	}
	return normalizeWindowsVolumePath(path)
}

func normalizeWindowsVolumePath(path string) string {
	path = strings.TrimSpace(path)
	path = strings.ReplaceAll(path, "/", `\`)
	upper := strings.ToUpper(path)

	// Already a raw volume path like \\.\C:
	if strings.HasPrefix(upper, `\\.\`) {
		return upper
	}

	// Handle paths like "C:" or "C:\" (must be drive letter only)
	if len(upper) >= 2 && upper[1] == ':' && unicode.IsLetter(rune(upper[0])) {
		return `\\.\` + string(upper[0]) + `:`
	}

	return path // Not a volume path
}

// NormalizeDevicePath turns a bare disk number into the platform's raw disk
// device path (\\.\PhysicalDriveN on Windows; elsewhere numbers are passed
// through unchanged) and otherwise defers to volume path normalization.
func NormalizeDevicePath(path string) string {
	if _, err := strconv.Atoi(strings.TrimSpace(path)); err == nil {
		if runtime.GOOS == "windows" {
			return `\\.\PhysicalDrive` + strings.TrimSpace(path)
		}
		return path
	}
	return NormalizeVolumePath(path)
}
