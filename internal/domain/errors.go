package domain

import "errors"

var (
	// ErrMissingEnv is returned when the workspace variable is not set
	ErrMissingEnv = errors.New("environment variable not set")
	// ErrProjectNotFound is returned when no workspace root contains the project
	ErrProjectNotFound = errors.New("project not found")
	// ErrToolchainFailed is returned when one of the toolchain steps exits non-zero
	ErrToolchainFailed = errors.New("toolchain step failed")
	// ErrInterrupted is returned when the run is cancelled by a signal
	ErrInterrupted = errors.New("interrupted")
)
