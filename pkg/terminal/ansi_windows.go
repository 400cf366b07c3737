//go:build windows

package terminal

import (
	"os"

	"golang.org/x/sys/windows"
)

func enableANSI(f *os.File) (func() error, error) {
	handle := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return nil, err
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return func() error { return nil }, nil
	}

	if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return nil, err
	}
	return func() error {
		return windows.SetConsoleMode(handle, mode)
	}, nil
}
