package model

import (
	"errors"
	"fmt"
)

var (
	// ErrEncoding reports malformed hex or byte input.
	ErrEncoding = errors.New("encoding error")
	// ErrCapacity reports data that exceeds a fixed circuit dimension.
	ErrCapacity = errors.New("capacity exceeded")
	// ErrInvalidLength reports a byte length outside a supported circuit family.
	ErrInvalidLength = errors.New("invalid length")
	// ErrRetargetMismatch reports a block batch that does not share the retarget period.
	ErrRetargetMismatch = errors.New("retarget period mismatch")
	// ErrNotFound reports a missing leaf or cache entry.
	ErrNotFound = errors.New("not found")
	// ErrExternalTool reports a failed or malformed prover toolchain call.
	ErrExternalTool = errors.New("external tool failure")
	// ErrMalformedArtifact reports toolchain output with an unexpected shape.
	ErrMalformedArtifact = errors.New("malformed proof artifact")
)

// ExternalToolError identifies which toolchain operation failed and for which circuit.
type ExternalToolError struct {
	Operation string
	Circuit   string
	Err       error
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("%s %s (%s): %v", ErrExternalTool, e.Operation, e.Circuit, e.Err)
}

// Unwrap exposes both the category sentinel and the underlying cause.
func (e *ExternalToolError) Unwrap() []error {
	return []error{ErrExternalTool, e.Err}
}

// NewExternalToolError wraps err unless it already carries an ExternalToolError.
func NewExternalToolError(operation, circuit string, err error) error {
	if err == nil {
		return nil
	}
	var tErr *ExternalToolError
	if errors.As(err, &tErr) {
		return err
	}
	return &ExternalToolError{Operation: operation, Circuit: circuit, Err: err}
}
