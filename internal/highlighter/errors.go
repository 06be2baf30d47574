package highlighter

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two fatal conditions this package can detect.
// Lookup misses are never errors; see Factory.For and Factory.Create.
var (
	// ErrNotImplemented marks a contract violation: a capability whose
	// predicate reports support was invoked but never overridden.
	ErrNotImplemented = errors.New("capability not implemented")

	// ErrMissingName marks a misconfiguration: an adapter produced by
	// Create has no usable name identity.
	ErrMissingName = errors.New("adapter has no name")
)

// notImplemented wraps ErrNotImplemented with the offending adapter and
// capability so the failure identifies its source.
func notImplemented(name, capability string) error {
	return fmt.Errorf("highlighter %q: %s: %w", name, capability, ErrNotImplemented)
}
