package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a metamodel that cannot be evaluated: missing,
	// unreadable, malformed or structurally inconsistent.
	ErrInvalidInput = errors.New("invalid metamodel")

	// ErrNoServices is returned when aggregate statistics are requested for a
	// system without microservices (the averages would divide by zero).
	ErrNoServices = fmt.Errorf("%w: system has no microservices", ErrInvalidInput)

	// ErrLookupTable marks a required lookup table that is missing or unreadable.
	ErrLookupTable = errors.New("lookup table unavailable")

	// ErrInvalidConfig marks a .mars.yaml that failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownRule is returned when a rule id is not in the catalog.
	ErrUnknownRule = errors.New("unknown rule")
)
