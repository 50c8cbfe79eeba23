package folder

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Name resolution is deterministic and total: the same input always yields
// the same output, and the worst case is the untouched raw segment.

// legacyEmployeeCode matches historical employee IDs: a known company code
// followed by a zero-padded sequence number, e.g. AL_ASHBAL004.
var legacyEmployeeCode = regexp.MustCompile(`^AL[_ -]?ASHBAL[_ -]?0*([0-9]+)$`)

// ResolveDisplayName maps a raw storage-key segment to a display name.
// Priority order, first non-empty wins:
//  1. the name on the relational employee record (trimmed, verbatim)
//  2. a path-derived hint
//  3. the legacy employee-code converter
//  4. cosmetic formatting of the raw segment
func ResolveDisplayName(rawSegment, dbName, pathHint string) string {
	if n := strings.TrimSpace(dbName); n != "" {
		return n
	}
	if h := strings.TrimSpace(pathHint); h != "" {
		return h
	}
	if n, ok := convertLegacyCode(rawSegment); ok {
		return n
	}
	return FormatName(rawSegment)
}

// CanonicalCompany resolves a raw company prefix via the alias table,
// falling back to cosmetic formatting. Alias lookup must happen before
// folder grouping so drifted prefixes merge into one folder.
func CanonicalCompany(rawPrefix string) string {
	key := strings.ToUpper(strings.TrimSpace(rawPrefix))
	if name, ok := companyAliases[key]; ok {
		return name
	}
	return FormatName(rawPrefix)
}

// AliasPrefixes returns every raw prefix known to alias to the given
// canonical company name, for scoping relational queries. The second
// result reports whether the name is in the static alias table; when it
// is false the enumeration is incomplete (drifted spellings of unknown
// companies cannot be listed up front) and callers must match rows by
// resolved canonical name instead.
func AliasPrefixes(companyName string) ([]string, bool) {
	var out []string
	for raw, canonical := range companyAliases {
		if canonical == companyName {
			out = append(out, raw)
		}
	}
	if len(out) == 0 {
		return []string{companyName}, false
	}
	sort.Strings(out)
	return out, true
}

// IsExcludedPrefix reports whether a raw prefix belongs to a throwaway
// bucket that never surfaces as a folder.
func IsExcludedPrefix(rawPrefix string) bool {
	_, ok := excludedPrefixes[strings.ToUpper(strings.TrimSpace(rawPrefix))]
	return ok
}

// convertLegacyCode maps a legacy employee code through the static name
// table. Unmatched patterns and unknown sequence numbers pass through.
func convertLegacyCode(segment string) (string, bool) {
	m := legacyEmployeeCode.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(segment)))
	if m == nil {
		return "", false
	}
	seq, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	name, ok := legacyEmployeeNames[seq]
	return name, ok
}

// FormatName cosmetically cleans a raw segment: separators become spaces,
// runs of whitespace collapse, and each fragment gets an upper-cased first
// rune. Already-uppercase fragments are left alone.
func FormatName(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', '.':
			return ' '
		}
		return r
	}, raw)

	fields := strings.Fields(cleaned)
	for i, f := range fields {
		fields[i] = upperFirst(f)
	}
	if len(fields) == 0 {
		return strings.TrimSpace(raw)
	}
	return strings.Join(fields, " ")
}

func upperFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
