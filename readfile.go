package machineuid

import (
	"context"
	"errors"
	"os"
	"strings"
)

// readTrimmedFile reads path and returns its content with surrounding
// whitespace removed. Failures are wrapped in [FileError].
func readTrimmedFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}

	return strings.TrimSpace(string(data)), nil
}

// readFirstAvailable reads the paths in order and returns the content of the
// first one that is readable. When every path fails, the individual read
// errors are joined so callers can inspect each attempt.
func readFirstAvailable(paths ...string) (string, error) {
	var errs []error

	for _, path := range paths {
		value, err := readTrimmedFile(path)
		if err == nil {
			return value, nil
		}

		errs = append(errs, err)
	}

	return "", errors.Join(errs...)
}

// fileThenCommand reads path, falling back to the given helper command's
// standard output when the file is unreadable. A blank command output counts
// as a failure. Both underlying errors are reported when the fallback fails
// too.
func fileThenCommand(ctx context.Context, r *Resolver, path, name string, args ...string) (string, error) {
	id, fileErr := readTrimmedFile(path)
	if fileErr == nil {
		return id, nil
	}

	r.logDebug("file unreadable, falling back to command", "path", path, "command", name)

	output, cmdErr := r.run(ctx, name, args...)
	if cmdErr != nil {
		return "", errors.Join(fileErr, cmdErr)
	}

	output = strings.TrimSpace(output)
	if output == "" {
		return "", errors.Join(fileErr, &CommandError{Command: name, Err: ErrEmptyID})
	}

	return output, nil
}
