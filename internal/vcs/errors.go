package vcs

import "errors"

// Error taxonomy for the engine. Operations wrap these sentinels with
// context; callers classify failures with errors.Is.
var (
	// ErrNotFound indicates an unknown commit, branch, or tag reference.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a duplicate branch or tag name.
	ErrAlreadyExists = errors.New("already exists")

	// ErrProtected indicates an attempt to delete the main branch or the
	// currently checked-out branch.
	ErrProtected = errors.New("branch is protected")

	// ErrCaptureFailed indicates the state provider could not capture the
	// live configuration.
	ErrCaptureFailed = errors.New("capture failed")

	// ErrApplyFailed indicates the state provider could not write a snapshot
	// back to the live configuration.
	ErrApplyFailed = errors.New("apply failed")

	// ErrPersistFailed indicates an I/O error writing store files.
	ErrPersistFailed = errors.New("persist failed")

	// ErrValidationFailed indicates the post-checkout validation did not
	// pass. The live state has already been overwritten when this is
	// returned; the pre-checkout safety commit remains reachable.
	ErrValidationFailed = errors.New("validation failed")
)
