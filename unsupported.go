//go:build !linux && !darwin && !windows && !freebsd && !dragonfly && !openbsd && !netbsd && !illumos

package machineuid

import "context"

// machineID is a placeholder for operating systems without a known machine
// identifier source. See the build tags above for the supported set.
func machineID(_ context.Context, _ *Resolver) (string, error) {
	return "", ErrUnsupportedPlatform
}
