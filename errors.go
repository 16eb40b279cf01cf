package emitter

import (
	"errors"
	"strconv"
)

// Sentinel errors for the emitter package.
var (
	// ErrWrongGoroutine is matched by errors.Is against the
	// ConfinementError a confined registry panics with when used off
	// its creating goroutine.
	ErrWrongGoroutine = errors.New("emitter: event used off its creating goroutine")
)

// ConfinementError reports use of a confined registry from a
// goroutine other than the one that created it. It is a programming
// error, not a runtime condition, and is delivered by panic.
type ConfinementError struct {
	// Created is the id of the goroutine that created the registry.
	Created uint64

	// Current is the id of the offending goroutine.
	Current uint64
}

// Error implements the error interface.
func (e *ConfinementError) Error() string {
	return "emitter: event created on goroutine " + strconv.FormatUint(e.Created, 10) +
		" used from goroutine " + strconv.FormatUint(e.Current, 10)
}

// Is allows errors.Is to match ConfinementError with ErrWrongGoroutine.
func (e *ConfinementError) Is(target error) bool {
	return target == ErrWrongGoroutine
}
