//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/term"
)

const reservedNameChars = `<>":/\|?*`

// CleanFileName strips characters Windows does not allow in file names.
func CleanFileName(in string) string {
	name := strings.Map(func(sym rune) rune {
		if sym == 0 || sym == os.PathSeparator || sym == os.PathListSeparator || strings.ContainsRune(reservedNameChars, sym) {
			return -1
		}
		return sym
	}, in)
	if len(name) == 0 {
		name = "_bad_file_name_"
	}
	return name
}

// EnableColorOutput reports whether stream can take colorized output. VT100
// sequence processing exists on Windows 10 and later only and has to be
// switched on explicitly for the console handle.
func EnableColorOutput(stream *os.File) bool {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	major, _, err := k.GetIntegerValue("CurrentMajorVersionNumber")
	if err != nil || major < 10 {
		return false
	}

	if !term.IsTerminal(int(stream.Fd())) {
		return false
	}

	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(stream.Fd()), &mode); err != nil {
		return false
	}
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	return windows.SetConsoleMode(windows.Handle(stream.Fd()), mode) == nil
}
