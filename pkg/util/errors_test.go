package util

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("interface", "00:00:00:00:00:00:00:01:2")

	want := "interface '00:00:00:00:00:00:00:01:2' not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should unwrap to ErrNotFound")
	}
}

func TestNotFoundError_Wrapped(t *testing.T) {
	inner := NewNotFoundError("switch", "sw1")
	outer := fmt.Errorf("loading inventory: %w", inner)

	if !errors.Is(outer, ErrNotFound) {
		t.Error("wrapped NotFoundError should still match ErrNotFound")
	}

	var nfe *NotFoundError
	if !errors.As(outer, &nfe) {
		t.Fatal("errors.As should find NotFoundError")
	}
	if nfe.Kind != "switch" {
		t.Errorf("Kind = %q, want %q", nfe.Kind, "switch")
	}
}

func TestSentinelErrorsDistinct(t *testing.T) {
	sentinels := []error{
		ErrPoolExhausted,
		ErrTagNotAvailable,
		ErrNotFound,
		ErrNotConnected,
		ErrInvalidConfig,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}
