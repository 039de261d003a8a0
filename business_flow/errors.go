// Package businessflow contains the core business logic and use cases for campaign workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Company-related errors
	ErrCompanyNotFound = errors.New("company not found")

	// Campaign-related errors
	ErrCampaignNotFound          = errors.New("campaign not found")
	ErrCampaignOverlap           = errors.New("overlapping campaign")
	ErrCampaignWindowInvalid     = errors.New("campaign start date must not be after end date")
	ErrRegistrationWindowInvalid = errors.New("registration start date must not be after registration end date")
	ErrCampaignUpdateRequired    = errors.New("at least one field must be provided for update")

	// Service-day-related errors
	ErrServiceDayNotFound               = errors.New("service day not found")
	ErrServiceDaysNotFound              = errors.New("service days not found")
	ErrServiceDateOnCampaignStart       = errors.New("service date equals campaign start date")
	ErrServiceDateInRegistrationWindow  = errors.New("service date falls within registration window")
	ErrServiceDateOutsideCampaignWindow = errors.New("service date outside campaign window")

	// Auth-related errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code string, err error, format string, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

func IsCompanyNotFound(err error) bool {
	return errors.Is(err, ErrCompanyNotFound)
}

func IsCampaignNotFound(err error) bool {
	return errors.Is(err, ErrCampaignNotFound)
}

func IsCampaignOverlap(err error) bool {
	return errors.Is(err, ErrCampaignOverlap)
}

func IsCampaignWindowInvalid(err error) bool {
	return errors.Is(err, ErrCampaignWindowInvalid)
}

func IsRegistrationWindowInvalid(err error) bool {
	return errors.Is(err, ErrRegistrationWindowInvalid)
}

func IsCampaignUpdateRequired(err error) bool {
	return errors.Is(err, ErrCampaignUpdateRequired)
}

func IsServiceDayNotFound(err error) bool {
	return errors.Is(err, ErrServiceDayNotFound)
}

func IsServiceDaysNotFound(err error) bool {
	return errors.Is(err, ErrServiceDaysNotFound)
}

// IsServiceDateInvalid reports whether err is any of the three service-date
// rule violations.
func IsServiceDateInvalid(err error) bool {
	return errors.Is(err, ErrServiceDateOnCampaignStart) ||
		errors.Is(err, ErrServiceDateInRegistrationWindow) ||
		errors.Is(err, ErrServiceDateOutsideCampaignWindow)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsUsernameTaken(err error) bool {
	return errors.Is(err, ErrUsernameTaken)
}
