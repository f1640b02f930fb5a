// Package machineuid retrieves the OS-native machine identifier without
// elevated privileges. The identifier uniquely identifies a host install,
// is stable across reboots, and can only be regenerated by root. It is
// read from the platform source exactly as the operating system stores it,
// never generated, hashed, or cached by this package.
//
// # Quick Start
//
//	id, err := machineuid.Get(ctx)
//
// Or with a configured [Resolver]:
//
//	id, err := machineuid.New().
//		WithTimeout(2 * time.Second).
//		ID(ctx)
//
// # Platform Sources
//
// Exactly one platform branch is compiled per build target:
//
//   - Linux: /var/lib/dbus/machine-id, falling back to /etc/machine-id
//     (32-character lowercase hex)
//   - FreeBSD, DragonFly, OpenBSD, NetBSD: /etc/hostid, falling back to
//     `kenv -q smbios.system.uuid`
//   - macOS: the IOPlatformUUID reported by
//     `ioreg -rd1 -c IOPlatformExpertDevice`
//   - Windows: the MachineGuid value of
//     HKEY_LOCAL_MACHINE\SOFTWARE\Microsoft\Cryptography, read from the
//     64-bit registry view when running as a 32-bit process under WOW64
//   - illumos: the gethostid(3C) value as printed in lowercase hex by
//     `hostid`
//
// On any other operating system [Resolver.ID] returns
// [ErrUnsupportedPlatform].
//
// # Error Handling
//
// Failures propagate immediately as a single error value wrapping the
// underlying cause; the only second attempts are the documented Linux and
// BSD primary/fallback pairs. Inspect causes with [errors.As] against
// [CommandError], [FileError], and [RegistryError], or [errors.Is] against
// [ErrUUIDNotFound], [ErrEmptyID], and [ErrUnsupportedPlatform].
//
// # Concurrency
//
// Each call reads the identifier fresh and mutates no shared state, so a
// Resolver is safe for concurrent use. Helper commands spawned on macOS,
// the BSDs, and illumos honor the caller's context and the default 5 second
// timeout;
// [Resolver.WithTimeout] adjusts or disables the bound.
//
// # Confidentiality
//
// On Linux the machine-id should be treated as confidential and not exposed
// to untrusted environments; hash it with an application-specific key before
// transmitting it off the host.
//
// # Testing
//
// Inject a custom [CommandExecutor] via [Resolver.WithExecutor] to replace
// the real ioreg/kenv invocations with deterministic test doubles.
//
// # CLI Tool
//
// A ready-to-use command-line tool is provided in cmd/machineuid:
//
//	machineuid
//	machineuid --json
//	machineuid --timeout 2s --debug
//	machineuid version --long
package machineuid
