//go:build darwin

package machineuid

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// TestMachineIDWithMockIOReg tests the full darwin path against synthetic
// ioreg output.
func TestMachineIDWithMockIOReg(t *testing.T) {
	mock := newMockExecutor()
	mock.setOutput("ioreg", sampleIORegOutput)

	r := New().WithExecutor(mock)

	id, err := machineID(context.Background(), r)
	if err != nil {
		t.Fatalf("machineID() error = %v", err)
	}

	if id != "7CFF9BB1-3B4D-4A8D-AF0C-EF2E1D6D0C9B" {
		t.Errorf("machineID() = %q, want the sample UUID", id)
	}
}

// TestMachineIDIORegFails tests that a failing ioreg surfaces a CommandError.
func TestMachineIDIORegFails(t *testing.T) {
	mock := newMockExecutor()
	mock.setError("ioreg", fmt.Errorf("executable file not found"))

	r := New().WithExecutor(mock)

	_, err := machineID(context.Background(), r)

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("machineID() error = %v, want CommandError", err)
	}
}

// TestMachineIDNoUUIDLine tests the explicit not-found error.
func TestMachineIDNoUUIDLine(t *testing.T) {
	mock := newMockExecutor()
	mock.setOutput("ioreg", `"IOPlatformSerialNumber" = "X0X0X0X0X0"`)

	r := New().WithExecutor(mock)

	_, err := machineID(context.Background(), r)
	if !errors.Is(err, ErrUUIDNotFound) {
		t.Errorf("machineID() error = %v, want ErrUUIDNotFound", err)
	}
}
