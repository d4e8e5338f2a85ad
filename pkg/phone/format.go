// Package phone formats lead phone numbers for display and export.
package phone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed for numbers written without a country code.
const DefaultRegion = "US"

// ErrEmpty is returned for a blank phone number.
var ErrEmpty = errors.New("phone number cannot be empty")

// ErrInvalid is returned for a number that parses but is not dialable.
var ErrInvalid = errors.New("invalid phone number")

// PhoneFormat represents different phone number format types.
type PhoneFormat int

const (
	// FormatE164 is the E.164 format (+15551234567).
	FormatE164 PhoneFormat = iota
	// FormatInternational is the international format (+1 555-123-4567).
	FormatInternational
	// FormatNational is the national format ((555) 123-4567).
	FormatNational
	// FormatRFC3966 is the RFC3966 format (tel:+1-555-123-4567).
	FormatRFC3966
)

func (f PhoneFormat) lib() phonenumbers.PhoneNumberFormat {
	switch f {
	case FormatInternational:
		return phonenumbers.INTERNATIONAL
	case FormatNational:
		return phonenumbers.NATIONAL
	case FormatRFC3966:
		return phonenumbers.RFC3966
	default:
		return phonenumbers.E164
	}
}

func parse(phone, region string) (*phonenumbers.PhoneNumber, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrEmpty
	}
	if region == "" {
		region = DefaultRegion
	}

	parsed, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}
	return parsed, nil
}

// FormatPhone formats a phone number in the specified format.
func FormatPhone(phone, region string, format PhoneFormat) (string, error) {
	parsed, err := parse(phone, region)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(parsed, format.lib()), nil
}

// NormalizePhone normalizes a valid phone number to E.164 format.
func NormalizePhone(phone, region string) (string, error) {
	parsed, err := parse(phone, region)
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", ErrInvalid
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// Display renders a number in international format when it is valid and
// returns the trimmed input unchanged otherwise.
func Display(phone, region string) string {
	parsed, err := parse(phone, region)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return strings.TrimSpace(phone)
	}
	return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
}
