//go:build darwin

package machineuid

import "context"

// machineID queries the IOPlatformExpertDevice registry plane via ioreg and
// extracts the hardware UUID from its diagnostic output.
func machineID(ctx context.Context, r *Resolver) (string, error) {
	output, err := r.run(ctx, "ioreg", "-rd1", "-c", "IOPlatformExpertDevice")
	if err != nil {
		return "", err
	}

	return extractPlatformUUID(output)
}
