package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Availability rejections
	ErrDateInPast        = errors.New("requested date is in the past")
	ErrDateBlocked       = errors.New("requested date is blocked by the vendor")
	ErrDateConflict      = errors.New("requested date conflicts with an existing booking")
	ErrVenueNotAvailable = errors.New("venue is not available for booking")

	// Lookup errors
	ErrVenueNotFound   = errors.New("venue not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrLeadNotFound    = errors.New("lead not found")

	// Lifecycle errors
	ErrAlreadyPromoted   = errors.New("lead already promoted to booking")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrAccessDenied      = errors.New("access denied")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidDateSpan = errors.New("dateFrom must not be after dateTo")
	ErrGuestsExceeded  = errors.New("guest count outside venue capacity")

	// Operation errors
	ErrStorageUnavailable      = errors.New("storage unavailable")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
