//go:build windows

package machineuid

import (
	"context"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	cryptographyKeyPath = `SOFTWARE\Microsoft\Cryptography`
	machineGuidValue    = "MachineGuid"
)

// machineID reads the MachineGuid generated at Windows installation from the
// Cryptography key under HKEY_LOCAL_MACHINE.
func machineID(_ context.Context, _ *Resolver) (string, error) {
	access := uint32(registry.QUERY_VALUE)
	if runningUnderWOW64() {
		// A 32-bit process gets its registry view redirected under WOW64;
		// MachineGuid only exists in the 64-bit view.
		access |= registry.WOW64_64KEY
	}

	return readRegistryString(cryptographyKeyPath, machineGuidValue, access)
}

// runningUnderWOW64 reports whether the current process is a 32-bit process
// on a 64-bit Windows installation.
func runningUnderWOW64() bool {
	var isWow64 bool
	if err := windows.IsWow64Process(windows.CurrentProcess(), &isWow64); err != nil {
		return false
	}

	return isWow64
}

// readRegistryString reads a named string value from a key under
// HKEY_LOCAL_MACHINE, trimming surrounding whitespace. Failures are wrapped
// in [RegistryError].
func readRegistryString(keyPath, valueName string, access uint32) (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath, access)
	if err != nil {
		return "", &RegistryError{Key: keyPath, Err: err}
	}
	defer key.Close()

	value, _, err := key.GetStringValue(valueName)
	if err != nil {
		return "", &RegistryError{Key: keyPath, Value: valueName, Err: err}
	}

	return strings.TrimSpace(value), nil
}
