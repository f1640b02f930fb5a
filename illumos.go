//go:build illumos

package machineuid

import (
	"context"
	"strings"
)

// machineID returns the host identifier as printed by hostid(1), which
// renders the gethostid(3C) value as lowercase hex.
func machineID(ctx context.Context, r *Resolver) (string, error) {
	output, err := r.run(ctx, "hostid")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(output), nil
}
