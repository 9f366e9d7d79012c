// Package vat derives French intra-community VAT numbers from a SIREN.
package vat

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/identifier"
)

// CountryCode is the only country this engine computes numbers for.
const CountryCode = "FR"

var pattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[0-9]{9}$`)

// Compute returns "FR" + 2 check digits + siren, or "" when siren is not
// exactly 9 digits. The key is (12 + 3 * (siren mod 97)) mod 97.
func Compute(siren string) string {
	if !identifier.IsSiren(siren) {
		return ""
	}
	n, err := strconv.ParseUint(siren, 10, 64)
	if err != nil {
		return ""
	}
	key := (12 + 3*(n%97)) % 97
	return fmt.Sprintf("%s%02d%s", CountryCode, key, siren)
}

// Valid reports whether v has the shape country + 2 digits + 9 digits.
func Valid(v string) bool {
	return pattern.MatchString(v)
}

// Split separates a VAT number into its country code and numeric body.
// The body is what validation services expect next to the country code.
func Split(v string) (country, body string, ok bool) {
	if !Valid(v) {
		return "", "", false
	}
	return v[:2], v[2:], true
}

// Status is the tri-state outcome of an external validation.
type Status int

const (
	// StatusIndeterminate means the validation service could not be reached.
	StatusIndeterminate Status = iota
	StatusValid
	StatusInvalid
)

// StatusFrom maps a definitive service answer to a Status.
func StatusFrom(valid bool) Status {
	if valid {
		return StatusValid
	}
	return StatusInvalid
}

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "indeterminate"
	}
}

// Bool returns the validity and whether it is known.
func (s Status) Bool() (valid bool, known bool) {
	switch s {
	case StatusValid:
		return true, true
	case StatusInvalid:
		return false, true
	default:
		return false, false
	}
}

// MarshalJSON renders true, false or null.
func (s Status) MarshalJSON() ([]byte, error) {
	valid, known := s.Bool()
	if !known {
		return []byte("null"), nil
	}
	return json.Marshal(valid)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*s = StatusIndeterminate
		return nil
	}
	*s = StatusFrom(*v)
	return nil
}
