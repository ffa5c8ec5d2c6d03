// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrLoginRequired marks actions that need a logged-in user.
var ErrLoginRequired = errors.New("login required")

// ValidationError is a malformed field in a payload (cart line, profile,
// payment method).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// PreconditionError is a request that cannot proceed in the current state:
// a missing required payload field, an empty cart, an unknown action.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return e.Reason }

// UnavailableError means an upstream read path produced nothing usable.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string { return e.Reason }

// GatewayError carries an upstream write failure, billing being the only
// write path. The upstream error text is preserved for the caller.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *GatewayError) Unwrap() error { return e.Err }
