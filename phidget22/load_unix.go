//go:build !windows

package phidget22

import (
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
)

func openLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func rootCandidates(root string) []string {
	if runtime.GOOS == "darwin" {
		return []string{
			filepath.Join(root, "phidget22.framework", "phidget22"),
			filepath.Join(root, "libphidget22.dylib"),
		}
	}
	return []string{
		filepath.Join(root, "lib", "libphidget22.so"),
		filepath.Join(root, "libphidget22.so"),
	}
}

// defaultCandidates lists the vendor's documented install locations. Plain
// sonames are resolved through the normal dynamic-linker search path.
func defaultCandidates() []string {
	if runtime.GOOS == "darwin" {
		return []string{
			"/Library/Frameworks/phidget22.framework/phidget22",
			"/usr/local/Frameworks/phidget22.framework/phidget22",
			"/opt/homebrew/Frameworks/phidget22.framework/phidget22",
			"libphidget22.dylib",
		}
	}
	return []string{
		"libphidget22.so.0",
		"libphidget22.so",
	}
}
