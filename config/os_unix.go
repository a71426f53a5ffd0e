//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// CleanFileName strips path separators from a candidate file name and drops
// leading dots so the result never escapes or hides in the output directory.
func CleanFileName(in string) string {
	name := strings.Map(func(sym rune) rune {
		switch sym {
		case os.PathSeparator, os.PathListSeparator:
			return -1
		}
		return sym
	}, in)
	name = strings.TrimLeft(name, ".")
	if len(name) == 0 {
		name = "_bad_file_name_"
	}
	return name
}

// EnableColorOutput reports whether stream is attached to a terminal.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
