//go:build !linux && !windows && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package report

// IsTerminal always reports false on platforms without terminal detection.
func IsTerminal(fd uintptr) bool {
	return false
}
