//go:build !js && !windows

package fmod

import (
	"fmt"
	"os"
	"runtime"

	"github.com/ebitengine/purego"
)

// libraryPath returns the shared library to load. FMOD_STUDIO_LIBRARY
// overrides the platform default, for SDKs unpacked outside the loader path.
func libraryPath() string {
	if p := os.Getenv("FMOD_STUDIO_LIBRARY"); p != "" {
		return p
	}
	if runtime.GOOS == "darwin" {
		return "libfmodstudio.dylib"
	}
	return "libfmodstudio.so"
}

func openLibrary(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("load fmodstudio library %q: %w", path, err)
	}
	return handle, nil
}
