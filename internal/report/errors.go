// Package report assembles a profile from answers and renders it into the
// fixed-layout PDF document.
package report

import "fmt"

// ProfileError represents a malformed profile caught before rendering starts.
type ProfileError struct {
	Message string
	Cause   error
}

func (e *ProfileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("profile error: %s", e.Message)
}

func (e *ProfileError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
