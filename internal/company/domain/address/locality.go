package address

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	pkgstrings "github.com/avelineg/siren-search-widget-sub000/pkg/platform/strings"
)

var (
	postalLocality = regexp.MustCompile(`(?:^|[^0-9])([0-9]{5})\s+([^0-9,]+)`)
	cedexTail      = regexp.MustCompile(`(?i)\s+CEDEX.*$`)
)

// ExpectedLocality extracts the town name from a raw address: the words that
// follow the last 5-digit postal code, or the last word when there is none.
func ExpectedLocality(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if matches := postalLocality.FindAllStringSubmatch(raw, -1); len(matches) > 0 {
		locality := matches[len(matches)-1][2]
		locality = cedexTail.ReplaceAllString(locality, "")
		if locality = pkgstrings.CollapseSpaces(locality); locality != "" {
			return locality
		}
	}
	fields := strings.Fields(raw)
	return strings.Trim(fields[len(fields)-1], ",")
}

// SameLocality compares two town names ignoring case, accents, hyphens and
// apostrophes. "Paris" matches "PARIS 8E ARRONDISSEMENT". An empty expected
// locality cannot contradict anything and matches.
func SameLocality(expected, got string) bool {
	e, g := foldLocality(expected), foldLocality(got)
	if e == "" {
		return true
	}
	if g == "" {
		return false
	}
	if e == g {
		return true
	}
	return strings.HasPrefix(g, e+" ") || strings.HasPrefix(e, g+" ")
}

// ContainsLocality reports whether the folded label contains the locality as
// whole words. Used when a provider only returns a display label.
func ContainsLocality(label, locality string) bool {
	l := foldLocality(locality)
	if l == "" {
		return true
	}
	return strings.Contains(" "+foldLocality(label)+" ", " "+l+" ")
}

func foldLocality(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.Map(func(r rune) rune {
		switch {
		case r == '-' || r == '\'' || r == '’' || r == ',':
			return ' '
		default:
			return unicode.ToUpper(r)
		}
	}, folded)
	folded = strings.ReplaceAll(" "+pkgstrings.CollapseSpaces(folded)+" ", " ST ", " SAINT ")
	folded = strings.ReplaceAll(folded, " STE ", " SAINTE ")
	return strings.TrimSpace(folded)
}
