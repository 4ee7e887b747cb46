// Package common provides shared constants, types, and utilities
// used across the Action Center application.
package common

import "errors"

// Sentinel errors. Check them with errors.Is().
var (
	// External command errors.
	ErrCommandFailed     = errors.New("external command failed")
	ErrUnexpectedOutput  = errors.New("unexpected command output")
	ErrUnknownCapability = errors.New("unknown capability")

	// Scheduler errors.
	ErrInboxFull  = errors.New("toggle inbox full")
	ErrNotRunning = errors.New("scheduler not running")

	// Window manager errors.
	ErrWindowNotFound = errors.New("window not found")
	ErrDispatch       = errors.New("window manager dispatch failed")

	// Theme errors.
	ErrInvalidColor = errors.New("invalid color")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
