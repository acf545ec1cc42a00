package phidget

import "github.com/Alia5/gophidget/phidget22"

// Initialize loads the native phidget22 library. Call once at program start;
// it is safe to call again and from multiple goroutines.
func Initialize() error {
	return phidget22.Load()
}

// LibraryVersion returns the full native library version string, e.g.
// "Phidget22 - Version 1.19 - Built ...".
func LibraryVersion() (string, error) {
	if !phidget22.Ready() {
		return "", ErrNotConfigured
	}
	v, code := phidget22.Phidget_getLibraryVersion()
	return v, Result(code)
}

// LibraryVersionNumber returns just the native version number, e.g. "1.19".
func LibraryVersionNumber() (string, error) {
	if !phidget22.Ready() {
		return "", ErrNotConfigured
	}
	v, code := phidget22.Phidget_getLibraryVersionNumber()
	return v, Result(code)
}
