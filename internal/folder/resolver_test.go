package folder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		dbName   string
		pathHint string
		want     string
	}{
		{
			name:   "db name wins",
			raw:    "AL_ASHBAL004",
			dbName: "  ABDUR ROHIM JR  ",
			want:   "ABDUR ROHIM JR",
		},
		{
			name:     "path hint when no db name",
			raw:      "e-1042",
			pathHint: "JOHN DOE",
			want:     "JOHN DOE",
		},
		{
			name: "legacy code converts through lookup table",
			raw:  "AL_ASHBAL004",
			want: "ABDUR ROHIM",
		},
		{
			name: "legacy code without separator",
			raw:  "ALASHBAL002",
			want: "RAFIQUL ISLAM",
		},
		{
			name: "unknown pattern falls through to formatter",
			raw:  "XYZ_999",
			want: "XYZ 999",
		},
		{
			name: "legacy code with unknown sequence passes through formatter",
			raw:  "AL_ASHBAL999",
			want: "AL ASHBAL999",
		},
		{
			name: "lowercase fragments are title-cased",
			raw:  "john_doe",
			want: "John Doe",
		},
		{
			name:   "whitespace-only db name is ignored",
			raw:    "AL_ASHBAL004",
			dbName: "   ",
			want:   "ABDUR ROHIM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDisplayName(tt.raw, tt.dbName, tt.pathHint)
			assert.Equal(t, tt.want, got)
			// Deterministic: same input, same output.
			assert.Equal(t, got, ResolveDisplayName(tt.raw, tt.dbName, tt.pathHint))
		})
	}
}

func TestCanonicalCompany(t *testing.T) {
	// Separator drift and conjunction spelling both land on one name.
	assert.Equal(t, "GOLDEN CUBS", CanonicalCompany("GOLDEN_CUBS"))
	assert.Equal(t, "GOLDEN CUBS", CanonicalCompany("GOLDEN CUBS"))
	assert.Equal(t, "STAR & CO", CanonicalCompany("STAR_AND_CO"))
	assert.Equal(t, "STAR & CO", CanonicalCompany("STAR AND CO"))

	// Unknown prefixes get cosmetic formatting only.
	assert.Equal(t, "NEWCO 2024", CanonicalCompany("NEWCO_2024"))
}

func TestAliasPrefixes(t *testing.T) {
	prefixes, known := AliasPrefixes("GOLDEN CUBS")
	assert.True(t, known)
	assert.Contains(t, prefixes, "GOLDEN CUBS")
	assert.Contains(t, prefixes, "GOLDEN_CUBS")
	assert.Contains(t, prefixes, "GOLDEN-CUBS")

	// Unknown companies have no complete enumeration; callers must match
	// by canonical name instead of trusting this list.
	prefixes, known = AliasPrefixes("NEWCO")
	assert.False(t, known)
	assert.Equal(t, []string{"NEWCO"}, prefixes)
}

func TestIsExcludedPrefix(t *testing.T) {
	assert.True(t, IsExcludedPrefix("TEST"))
	assert.True(t, IsExcludedPrefix("tmp"))
	assert.False(t, IsExcludedPrefix("GOLDEN_CUBS"))
}

func TestFormatName(t *testing.T) {
	assert.Equal(t, "XYZ 999", FormatName("XYZ_999"))
	assert.Equal(t, "Golden Cubs", FormatName("golden-cubs"))
	assert.Equal(t, "A B C", FormatName("a.b.c"))
	assert.Equal(t, "", FormatName(""))
}
