package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrMissingToken  = fmt.Errorf("missing API token")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrBadResponse        = fmt.Errorf("unexpected API response")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrShowNotFound       = fmt.Errorf("show not found")
	ErrSongNotFound       = fmt.Errorf("song not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
	ErrQueryTooShort   = fmt.Errorf("query too short")
)
