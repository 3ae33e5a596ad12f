package report

import "golang.org/x/sys/windows"

// IsTerminal returns whether the given file descriptor refers to a console.
func IsTerminal(fd uintptr) bool {
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(fd), &mode) == nil
}
