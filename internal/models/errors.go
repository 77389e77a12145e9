package models

import "errors"

// Errors returned by tracker operations. They are wrapped with detail, so
// callers should match them with errors.Is.
var (
	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateName means another group already uses the name.
	ErrDuplicateName = errors.New("group name already exists")

	// ErrDuplicateEmail means another member already uses the email.
	ErrDuplicateEmail = errors.New("member email already exists")

	// ErrInvalidAssignment means the member does not exist or is not part
	// of the task's group.
	ErrInvalidAssignment = errors.New("invalid member assignment")

	// ErrAlreadyCompleted means the task was completed before.
	ErrAlreadyCompleted = errors.New("task already completed")

	// ErrNotFound means a referenced group, member or task does not exist.
	ErrNotFound = errors.New("not found")
)
