//go:build freebsd || dragonfly || openbsd || netbsd

package machineuid

import "context"

// hostIDPath holds the host UUID on BSD systems that persist one.
const hostIDPath = "/etc/hostid"

// machineID reads /etc/hostid, falling back to the SMBIOS system UUID from
// the kernel environment when the file is unreadable.
func machineID(ctx context.Context, r *Resolver) (string, error) {
	return fileThenCommand(ctx, r, hostIDPath, "kenv", "-q", "smbios.system.uuid")
}
