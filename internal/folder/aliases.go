package folder

// Static naming data. Storage-key prefixes drifted over the years (separator
// style, conjunction spelling, legacy employee codes), so the tables below
// map every known historical form onto one canonical display name. Unknown
// inputs always pass through; nothing here ever fails a lookup.

// companyAliases maps raw storage prefixes, including every known legacy
// spelling, to the canonical company display name. Two prefixes that alias
// to the same name must aggregate into one folder.
var companyAliases = map[string]string{
	"GOLDEN_CUBS":     "GOLDEN CUBS",
	"GOLDEN CUBS":     "GOLDEN CUBS",
	"GOLDEN-CUBS":     "GOLDEN CUBS",
	"AL_ASHBAL":       "AL ASHBAL",
	"AL ASHBAL":       "AL ASHBAL",
	"ALASHBAL":        "AL ASHBAL",
	"STAR_AND_CO":     "STAR & CO",
	"STAR AND CO":     "STAR & CO",
	"STAR & CO":       "STAR & CO",
	"BLUE_BIRD":       "BLUE BIRD",
	"BLUE BIRD":       "BLUE BIRD",
	"BLUEBIRD":        "BLUE BIRD",
	"CRESCENT_MARINE": "CRESCENT MARINE",
	"CRESCENT MARINE": "CRESCENT MARINE",
}

// canonicalPrefixes marks the raw prefix preferred as a folder's id suffix
// when a merged group contains it.
var canonicalPrefixes = map[string]struct{}{
	"GOLDEN CUBS":     {},
	"AL ASHBAL":       {},
	"STAR & CO":       {},
	"BLUE BIRD":       {},
	"CRESCENT MARINE": {},
}

// excludedPrefixes are throwaway buckets that never become folders.
var excludedPrefixes = map[string]struct{}{
	"TEST":    {},
	"TESTING": {},
	"TMP":     {},
	"DEMO":    {},
}

// legacyEmployeeNames maps the zero-padded sequence number of a legacy
// employee code (e.g. AL_ASHBAL004) to the employee's known name.
var legacyEmployeeNames = map[int]string{
	1: "MOHAMMED KARIM",
	2: "RAFIQUL ISLAM",
	3: "SHAHIDUL HAQUE",
	4: "ABDUR ROHIM",
	5: "NURUL AMIN",
	7: "KAMAL HOSSAIN",
}

// fallbackCompanies is the static folder list served, flagged degraded,
// when the row fetch fails and no cached list exists.
var fallbackCompanies = []string{
	"GOLDEN CUBS",
	"AL ASHBAL",
	"STAR & CO",
	"BLUE BIRD",
	"CRESCENT MARINE",
}
