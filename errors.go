package machineuid

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [Resolver.ID].
var (
	// ErrUUIDNotFound is returned on macOS when no line of the ioreg
	// output contains the IOPlatformUUID marker.
	ErrUUIDNotFound = errors.New("no IOPlatformUUID line in ioreg output")

	// ErrEmptyID is returned when the platform source yielded a blank
	// identifier after trimming.
	ErrEmptyID = errors.New("machine identifier is empty")

	// ErrUnsupportedPlatform is returned on operating systems without a
	// known machine identifier source.
	ErrUnsupportedPlatform = errors.New("machine identifier is not supported on this platform")
)

// CommandError records a failed helper command execution.
// Use [errors.As] to extract the command name from wrapped errors.
type CommandError struct {
	Command string // command name, e.g. "ioreg", "kenv"
	Err     error  // underlying error from exec
}

// Error returns a human-readable description of the command failure.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// FileError records a failure reading a machine identifier file.
// Use [errors.As] to extract the path from wrapped errors.
type FileError struct {
	Path string // file path, e.g. "/etc/machine-id"
	Err  error  // underlying error from the filesystem
}

// Error returns a human-readable description of the read failure.
func (e *FileError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}

// RegistryError records a failure opening a Windows registry key or reading
// one of its values. Value is empty when the key itself could not be opened.
type RegistryError struct {
	Key   string // registry key path under HKEY_LOCAL_MACHINE
	Value string // value name, empty for key-open failures
	Err   error  // underlying registry error
}

// Error returns a human-readable description of the registry failure.
func (e *RegistryError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("opening registry key %q: %v", e.Key, e.Err)
	}

	return fmt.Sprintf("reading registry value %q of key %q: %v", e.Value, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *RegistryError) Unwrap() error {
	return e.Err
}
