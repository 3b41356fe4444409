package resolver

import (
	"regexp"
	"strings"

	"Attirra/internal/catalog"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	nonSlug    = regexp.MustCompile(`[^a-z0-9_]`)
)

// Slug normalizes a region name into an asset file stem:
// "Tamil Nadu" -> "tamil_nadu", "Jammu & Kashmir" -> "jammu_and_kashmir".
func Slug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", "and")
	s = whitespace.ReplaceAllString(s, "_")
	return nonSlug.ReplaceAllString(s, "")
}

// Candidates lists the asset paths probed for a region outfit, most specific first.
func Candidates(region string, g catalog.Gender) []string {
	slug := Slug(region)
	gender := g.String()
	return []string{
		"models/" + gender + "/" + slug + ".glb",
		"models/" + slug + "_" + gender + ".glb",
		"models/outfits/" + slug + "_" + gender + ".glb",
		"models/" + slug + ".glb",
	}
}

// MannequinPath is the base body mesh for a gender.
func MannequinPath(g catalog.Gender) string {
	return "models/mannequin-" + g.String() + ".glb"
}
