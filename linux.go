//go:build linux

package machineuid

import "context"

// Machine-id locations on systemd and dbus based systems. The dbus path is
// tried first; some distributions (e.g. Fedora 20) only ship the /etc one.
const (
	dbusMachineIDPath = "/var/lib/dbus/machine-id"
	etcMachineIDPath  = "/etc/machine-id"
)

// machineID reads the systemd/dbus machine-id, a 32-character lowercase hex
// string.
func machineID(_ context.Context, _ *Resolver) (string, error) {
	return readFirstAvailable(dbusMachineIDPath, etcMachineIDPath)
}
