package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderFault marks any weather provider failure other than an unknown location
	ErrProviderFault = errors.New("weather provider fault")
	// ErrStoreFault marks a failed read or write of a profile or user record
	ErrStoreFault = errors.New("store fault")
	// ErrDeliveryFault marks a failed send to a specific recipient
	ErrDeliveryFault = errors.New("delivery fault")

	ErrProfileExists       = errors.New("a profile with this name already exists")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrDefaultProfile      = errors.New("the default profile cannot be deleted")
	ErrInvalidProfileName  = errors.New("invalid profile name")
	ErrUnsupportedLanguage = errors.New("language not supported")
	ErrNoLocation          = errors.New("no location indicated and no location set")
	ErrNoTime              = errors.New("no delivery time set")
)

// ProviderError is an error reported in the body of a weather provider response
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

// IsLocationNotFound reports whether err carries the provider's "no matching location" error.
// Its message is meant to be shown to the user as is.
func IsLocationNotFound(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Code == LocationNotFoundCode
}

// AsProviderError returns the provider error wrapped in err, if any
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
