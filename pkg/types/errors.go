package types

import "errors"

// Authentication and authorization errors.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrNotAuthenticated   = errors.New("no principal is logged in")
	ErrNotAuthorized      = errors.New("operation requires the Admin role")
)

// Storage errors. The engine maps driver failures onto these sentinels so
// callers can branch with errors.Is without knowing the driver.
var (
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrConnection          = errors.New("store unavailable")
	ErrMalformedRecord     = errors.New("record fields and values disagree")
	ErrTableUnknown        = errors.New("unknown table")
	ErrInvalidFilter       = errors.New("filter references an undeclared column")
)

// Validation errors.
var (
	ErrValidation    = errors.New("validation failed")
	ErrInvalidStatus = errors.New("invalid status value")
)
