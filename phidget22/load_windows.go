package phidget22

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

func openLibrary(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func rootCandidates(root string) []string {
	return []string{
		filepath.Join(root, "phidget22.dll"),
		filepath.Join(root, "x64", "phidget22.dll"),
	}
}

// defaultCandidates relies on the standard DLL search path; the vendor
// installer puts phidget22.dll on it.
func defaultCandidates() []string {
	return []string{"phidget22.dll"}
}
