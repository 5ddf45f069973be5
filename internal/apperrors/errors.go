package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCoordinate indicates a reported GPS coordinate is NaN or outside
// the valid latitude/longitude range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ErrOutsideAuthorizedArea indicates the reported coordinate is not within the
// radius of any currently active authorized location.
var ErrOutsideAuthorizedArea = errors.New("outside authorized area")

// ErrAlreadyCheckedIn indicates the user already has a check-in recorded for the day.
var ErrAlreadyCheckedIn = errors.New("already checked in today")

// ErrAlreadyCheckedOut indicates the user already has a check-out recorded for the day.
var ErrAlreadyCheckedOut = errors.New("already checked out today")

// ErrNoCheckInFound indicates a check-out was attempted without a prior check-in.
var ErrNoCheckInFound = errors.New("no check-in found for today")
