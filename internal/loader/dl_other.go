//go:build !(darwin || freebsd || linux || netbsd || windows)

package loader

import (
	"errors"
	"runtime"
)

var errNoDynamicLoading = errors.New("dynamic loading is not supported on " + runtime.GOOS)

func openLibrary(string) (uintptr, error) {
	return 0, errNoDynamicLoading
}

func lookupSymbol(uintptr, string) (uintptr, error) {
	return 0, errNoDynamicLoading
}

func closeLibrary(uintptr) {}
