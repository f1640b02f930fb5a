package machineuid

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// defaultTimeout bounds the helper commands (ioreg, kenv, hostid) spawned by
// the default executor. Disable with [Resolver.WithTimeout] (0).
const defaultTimeout = 5 * time.Second

// CommandExecutor is an interface for executing system commands, allowing for
// dependency injection and testing.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

// Resolver retrieves the OS-native machine identifier.
// Every call to [Resolver.ID] reads the identifier fresh from the platform
// source; nothing is cached and no internal state is mutated, so a Resolver
// is safe for concurrent use.
type Resolver struct {
	executor CommandExecutor
	logger   *slog.Logger
	timeout  time.Duration
}

// New creates a new Resolver with default settings.
// The resolver uses real system commands by default.
func New() *Resolver {
	return &Resolver{
		timeout: defaultTimeout,
	}
}

// WithExecutor sets a custom [CommandExecutor], enabling deterministic testing
// without real system commands.
func (r *Resolver) WithExecutor(executor CommandExecutor) *Resolver {
	r.executor = executor

	return r
}

// WithLogger sets an optional [*slog.Logger] for observability.
// When set, the resolver logs source selection, fallback paths, and command
// execution timing. A nil logger (the default) disables all logging with
// zero overhead.
func (r *Resolver) WithLogger(logger *slog.Logger) *Resolver {
	r.logger = logger

	return r
}

// WithTimeout sets the timeout applied by the default executor to helper
// commands. A zero or negative duration disables the timeout, restoring the
// block-until-done behavior of the underlying tools. It has no effect when a
// custom executor is installed via [Resolver.WithExecutor].
func (r *Resolver) WithTimeout(timeout time.Duration) *Resolver {
	r.timeout = timeout

	return r
}

// ID returns the machine identifier of the current host.
//
// The identifier comes straight from the platform source (file, registry,
// helper command, or system call) with surrounding whitespace trimmed; it is
// never generated, hashed, or cached by this package. The provided context
// controls cancellation of any helper commands spawned during retrieval.
func (r *Resolver) ID(ctx context.Context) (string, error) {
	r.logDebug("resolving machine identifier", "platform", runtime.GOOS)

	id, err := machineID(ctx, r)
	if err != nil {
		r.logWarn("machine identifier resolution failed", "error", err)

		return "", err
	}

	if id == "" {
		r.logWarn("platform source returned an empty identifier")

		return "", ErrEmptyID
	}

	r.logDebug("machine identifier resolved", "length", len(id))

	return id, nil
}

// Get returns the machine identifier of the current host using a default
// [Resolver]. It is shorthand for New().ID(ctx).
func Get(ctx context.Context) (string, error) {
	return New().ID(ctx)
}

// run executes a helper command through the configured executor, falling back
// to the default exec-based executor, and wraps failures in [CommandError].
func (r *Resolver) run(ctx context.Context, name string, args ...string) (string, error) {
	executor := r.executor
	if executor == nil {
		executor = &defaultCommandExecutor{timeout: r.timeout}
	}

	start := time.Now()

	output, err := executor.Execute(ctx, name, args...)
	if err != nil {
		return "", &CommandError{Command: name, Err: err}
	}

	r.logDebug("command completed", "command", name, "duration", time.Since(start))

	return output, nil
}

// logDebug logs at debug level if a logger is configured.
func (r *Resolver) logDebug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}

// logWarn logs at warn level if a logger is configured.
func (r *Resolver) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}
