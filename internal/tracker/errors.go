package tracker

import (
	"errors"

	"github.com/mmynk/teamtally/internal/models"
)

var domainErrors = []error{
	models.ErrValidation,
	models.ErrDuplicateName,
	models.ErrDuplicateEmail,
	models.ErrInvalidAssignment,
	models.ErrAlreadyCompleted,
	models.ErrNotFound,
}

// isDomainError reports whether err is an expected rejection rather than a
// storage failure.
func isDomainError(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
