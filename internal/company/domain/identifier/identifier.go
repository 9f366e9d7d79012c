// Package identifier classifies user-supplied lookup codes.
//
// A Siret (14 digits) identifies an establishment, a Siren (9 digits) a legal
// unit. Anything that is not purely digits after separator cleanup is a free
// text name query.
package identifier

import (
	"errors"
	"strings"
)

// Kind is the classification of a lookup input.
type Kind int

const (
	KindNameQuery Kind = iota
	KindSiren
	KindSiret
)

func (k Kind) String() string {
	switch k {
	case KindSiren:
		return "siren"
	case KindSiret:
		return "siret"
	default:
		return "name"
	}
}

const (
	SirenLength = 9
	SiretLength = 14
)

// ErrInvalidIdentifier is returned when an identifier-shaped input has
// neither 9 nor 14 digits.
var ErrInvalidIdentifier = errors.New("invalid identifier: expected 9 or 14 digits")

// Siren is a validated 9-digit legal-unit identifier.
type Siren string

// Siret is a validated 14-digit establishment identifier.
type Siret string

func (s Siren) String() string { return string(s) }
func (s Siret) String() string { return string(s) }

// Siren returns the legal-unit prefix of the establishment identifier.
func (s Siret) Siren() Siren {
	return Siren(s[:SirenLength])
}

// NIC returns the 5-digit establishment sequence number.
func (s Siret) NIC() string {
	return string(s[SirenLength:])
}

// Classification is the outcome of Classify.
type Classification struct {
	Kind  Kind
	Code  string // cleaned digits for Siren/Siret, trimmed text for name queries
	Siren Siren
	Siret Siret
}

// Classify determines whether input is a Siret, a Siren or a name query.
// Spaces, dots and dashes are accepted as digit group separators.
func Classify(input string) (Classification, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Classification{}, ErrInvalidIdentifier
	}
	cleaned := stripSeparators(trimmed)
	if cleaned == "" || !isDigits(cleaned) {
		return Classification{Kind: KindNameQuery, Code: trimmed}, nil
	}
	switch len(cleaned) {
	case SiretLength:
		siret := Siret(cleaned)
		return Classification{Kind: KindSiret, Code: cleaned, Siret: siret, Siren: siret.Siren()}, nil
	case SirenLength:
		return Classification{Kind: KindSiren, Code: cleaned, Siren: Siren(cleaned)}, nil
	default:
		return Classification{}, ErrInvalidIdentifier
	}
}

// ParseSiren validates a 9-digit legal-unit identifier.
func ParseSiren(input string) (Siren, error) {
	cleaned := stripSeparators(strings.TrimSpace(input))
	if len(cleaned) != SirenLength || !isDigits(cleaned) {
		return "", ErrInvalidIdentifier
	}
	return Siren(cleaned), nil
}

// ParseSiret validates a 14-digit establishment identifier.
func ParseSiret(input string) (Siret, error) {
	cleaned := stripSeparators(strings.TrimSpace(input))
	if len(cleaned) != SiretLength || !isDigits(cleaned) {
		return "", ErrInvalidIdentifier
	}
	return Siret(cleaned), nil
}

// IsSiren reports whether s is exactly 9 ASCII digits.
func IsSiren(s string) bool {
	return len(s) == SirenLength && isDigits(s)
}

// IsSiret reports whether s is exactly 14 ASCII digits.
func IsSiret(s string) bool {
	return len(s) == SiretLength && isDigits(s)
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '.', '-', '\t':
			return -1
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
