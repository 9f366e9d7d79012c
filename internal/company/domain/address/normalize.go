// Package address cleans free-text French postal addresses before geocoding.
//
// Normalize works on an uppercase copy of the input and runs four ordered
// stages: qualifier removal, abbreviation expansion, known street-name
// corrections and whitespace cleanup. Every stage is a fixed pattern table,
// and running Normalize on its own output returns the same string.
package address

import (
	"regexp"
	"strings"

	pkgstrings "github.com/avelineg/siren-search-widget-sub000/pkg/platform/strings"
)

// removals drop whole spans that confuse geocoders.
var removals = []*regexp.Regexp{
	regexp.MustCompile(`\bBP\s*N?°?\s*[0-9]+\b`),
	regexp.MustCompile(`\bCS\s*N?°?\s*[0-9]+\b`),
	regexp.MustCompile(`\bTSA\s*[0-9]+\b`),
	regexp.MustCompile(`\bCEDEX(?:\s+[0-9]{1,2}\b)?`),
	regexp.MustCompile(`\bGALERIE MARCHANDE\b`),
	regexp.MustCompile(`\bCENTRE D'AFFAIRES\b`),
	regexp.MustCompile(`\bLOCAL\s+(?:COMMERCIAL\s+)?N?°?\s*[0-9]+\b`),
	regexp.MustCompile(`\b(?:BATIMENT|BÂTIMENT|BAT|BÂT|IMMEUBLE|IMM|ESCALIER|ESC|APPARTEMENT|APPT|APT)\b\.?(?:\s*N?°?\s*(?:[0-9]{1,3}|[A-Z][0-9]{0,2})\b)?`),
}

// expansion rewrites an abbreviation. Boundaries are Unicode-aware so that
// "ST" never matches inside "STÉPHANE". A dotted abbreviation is followed by
// a space so "AV.FOCH" still splits into two words. The separator after the
// dot is left in place so it can open the next match.
type expansion struct {
	dotted *regexp.Regexp
	bare   *regexp.Regexp
	with   string
}

func expand(abbr, with string) expansion {
	return expansion{
		dotted: regexp.MustCompile(`(^|[^\p{L}\p{N}])(?:` + abbr + `)\.`),
		bare:   regexp.MustCompile(`(^|[^\p{L}\p{N}])(?:` + abbr + `)([^\p{L}\p{N}.]|$)`),
		with:   with,
	}
}

func (e expansion) apply(s string) string {
	s = untilStable(s, func(s string) string {
		return e.dotted.ReplaceAllString(s, "${1}"+e.with+" ")
	})
	// Adjacent matches share a separator, so repeat until stable.
	return untilStable(s, func(s string) string {
		return e.bare.ReplaceAllString(s, "${1}"+e.with+"${2}")
	})
}

// maxPasses bounds every repeat-until-stable loop.
const maxPasses = 8

func untilStable(s string, step func(string) string) string {
	for i := 0; i < maxPasses; i++ {
		next := step(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

// Order matters: STE must run before ST, FBG before FG.
var expansions = []expansion{
	expand(`AV|AVE`, "AVENUE"),
	expand(`BLD|BVD|BD`, "BOULEVARD"),
	expand(`CHEM|CHE`, "CHEMIN"),
	expand(`RTE`, "ROUTE"),
	expand(`PL`, "PLACE"),
	expand(`IMP`, "IMPASSE"),
	expand(`SQ`, "SQUARE"),
	expand(`FBG|FG`, "FAUBOURG"),
	expand(`CRS`, "COURS"),
	expand(`ALL`, "ALLÉE"),
	expand(`QUA`, "QUAI"),
	expand(`PROM`, "PROMENADE"),
	expand(`GAL`, "GÉNÉRAL"),
	expand(`STE`, "SAINTE"),
	expand(`ST`, "SAINT"),
}

type correction struct {
	re   *regexp.Regexp
	with string
}

// president collapses "PRESIDENT <first names> X" to "PRÉSIDENT X".
func president(surname, canonical string) correction {
	return correction{
		re:   regexp.MustCompile(`\bPR[EÉ]SIDENT\s+(?:[\p{Lu}.'-]+\s+){0,2}?(?:` + surname + `)`),
		with: "PRÉSIDENT " + canonical,
	}
}

var corrections = []correction{
	president(`POINCAR[EÉ]`, "POINCARÉ"),
	president(`WILSON`, "WILSON"),
	president(`KENNEDY`, "KENNEDY"),
	president(`ROOSEVELT`, "ROOSEVELT"),
	president(`MITTERRAND`, "MITTERRAND"),
	president(`ALLENDE`, "ALLENDE"),
	president(`COTY`, "COTY"),
	{re: regexp.MustCompile(`\bG[EÉ]N[EÉ]RAL\s+(?:CHARLES\s+)?DE\s+GAULLE\b`), with: "GÉNÉRAL DE GAULLE"},
	{re: regexp.MustCompile(`\bG[EÉ]N[EÉ]RAL\s+LECLERC\b`), with: "GÉNÉRAL LECLERC"},
	{re: regexp.MustCompile(`\bMAR[EÉ]CHAL\b`), with: "MARÉCHAL"},
}

var (
	gluedDot   = regexp.MustCompile(`(\p{L})\.([\p{L}\p{N}])`)
	commaRun   = regexp.MustCompile(`\s*(?:,\s*)+`)
	edgeCommas = regexp.MustCompile(`^[\s,]+|[\s,]+$`)
)

// Normalize returns the cleaned, uppercase form of raw, or "" for blank input.
// Stages can expose new matches for earlier ones, so the pipeline reruns on
// its own output until nothing changes.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(strings.NewReplacer("’", "'", "`", "'").Replace(s))
	return untilStable(s, normalizeOnce)
}

func normalizeOnce(s string) string {
	// "AV.RESIDENCE" must be two tokens before clauses are removed.
	s = untilStable(s, func(s string) string {
		return gluedDot.ReplaceAllString(s, "$1. $2")
	})

	for _, re := range removals {
		s = re.ReplaceAllString(s, " ")
	}
	s = removeClauses(s)

	for _, e := range expansions {
		s = e.apply(s)
	}

	for _, c := range corrections {
		s = c.re.ReplaceAllString(s, c.with)
	}

	s = commaRun.ReplaceAllString(s, ", ")
	s = edgeCommas.ReplaceAllString(s, "")
	s = pkgstrings.CollapseSpaces(s)
	return strings.ReplaceAll(s, " ,", ",")
}

// streetTypes end a residence or zone clause. Abbreviations are listed
// because clauses are removed before expansion runs.
var streetTypes = map[string]struct{}{
	"RUE": {}, "AVENUE": {}, "AV": {}, "AVE": {}, "BOULEVARD": {}, "BD": {}, "BLD": {},
	"CHEMIN": {}, "CHE": {}, "ROUTE": {}, "RTE": {}, "PLACE": {}, "PL": {},
	"IMPASSE": {}, "IMP": {}, "ALLEE": {}, "ALLÉE": {}, "ALL": {}, "QUAI": {}, "QUA": {},
	"COURS": {}, "CRS": {}, "SQUARE": {}, "SQ": {}, "FAUBOURG": {}, "FBG": {}, "FG": {},
	"PASSAGE": {}, "VOIE": {}, "LIEU-DIT": {}, "LIEUDIT": {}, "RD": {}, "RN": {},
	"PROMENADE": {}, "CHAUSSEE": {}, "CHAUSSÉE": {}, "ESPLANADE": {}, "HAMEAU": {},
}

var articles = map[string]struct{}{
	"DE": {}, "DU": {}, "DES": {}, "LA": {}, "LE": {}, "LES": {}, "D'": {}, "L'": {},
}

// clauseStart reports how many tokens at i open a residence/zone clause.
func clauseStart(tokens []string, i int) int {
	if i > 0 {
		if _, ok := articles[tokens[i-1]]; ok {
			return 0
		}
	}
	switch tokens[i] {
	case "RESIDENCE", "RÉSIDENCE", "RES", "RES.", "RESID", "ZONE", "ZI", "ZA", "ZAC", "ZAE", "ZIL":
		return 1
	case "CENTRE":
		if i+1 < len(tokens) && tokens[i+1] == "COMMERCIAL" {
			return 2
		}
	case "PARC":
		if i+1 < len(tokens) && (strings.HasPrefix(tokens[i+1], "D'") ||
			tokens[i+1] == "TECHNOLOGIQUE" || tokens[i+1] == "INDUSTRIEL") {
			return 1
		}
	}
	return 0
}

func endsClause(tok string) bool {
	if tok == "," {
		return true
	}
	if tok[0] >= '0' && tok[0] <= '9' {
		return true
	}
	_, ok := streetTypes[strings.TrimSuffix(tok, ".")]
	return ok
}

// removeClauses drops "RESIDENCE <name>" and business-park/zone clauses up to
// the next street number, comma or street type.
func removeClauses(s string) string {
	tokens := strings.Fields(strings.ReplaceAll(s, ",", " , "))
	kept := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		n := clauseStart(tokens, i)
		if n == 0 {
			kept = append(kept, tokens[i])
			continue
		}
		i += n
		for i < len(tokens) && !endsClause(tokens[i]) {
			i++
		}
		i--
	}
	return strings.Join(kept, " ")
}

// Join concatenates address components with single spaces, skipping blanks.
func Join(parts ...string) string {
	return pkgstrings.JoinNonEmpty(" ", parts...)
}
