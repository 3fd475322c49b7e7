package services

import "errors"

var (
	// ErrValidation rejects a submission before any network call is made.
	ErrValidation = errors.New("validation error")

	// ErrTogglePending rejects a like toggle while one for the same article
	// is still in flight.
	ErrTogglePending = errors.New("toggle already pending")

	// ErrFormNotLoaded rejects field changes before the form's one-time
	// draft load has completed.
	ErrFormNotLoaded = errors.New("form not loaded")

	// ErrFormAlreadyLoaded rejects a second Load on the same form instance.
	ErrFormAlreadyLoaded = errors.New("form already loaded")

	// ErrFormSubmitted rejects changes to a form after successful submission.
	ErrFormSubmitted = errors.New("form already submitted")
)
