//go:build windows

package fmod

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// libraryPath returns the shared library to load. FMOD_STUDIO_LIBRARY
// overrides the platform default, for SDKs unpacked outside the loader path.
func libraryPath() string {
	if p := os.Getenv("FMOD_STUDIO_LIBRARY"); p != "" {
		return p
	}
	return "fmodstudio.dll"
}

func openLibrary(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("load fmodstudio library %q: %w", path, err)
	}
	return uintptr(handle), nil
}
