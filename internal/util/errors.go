package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrConceptNotFound    = errors.New("concept not found")
	ErrCheckpointNotFound = errors.New("checkpoint not found")
	ErrProblemNotFound    = errors.New("problem not found")
	ErrStepNotFound       = errors.New("step not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionEnded       = errors.New("session already ended")
	ErrPatternNotFound    = errors.New("error pattern not found")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrSimulationNotFound = errors.New("simulation not found")

	// Returned when the progress upsert keeps colliding with a concurrent
	// writer after all local retries.
	ErrProgressConflict = errors.New("progress record conflict, retries exhausted")
)
