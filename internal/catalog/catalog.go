package catalog

import (
	"sort"
	"strings"
)

// OutfitRecord is the display metadata of one traditional outfit.
type OutfitRecord struct {
	Name string
	Desc string
}

// Entry holds the outfits of one region.
type Entry struct {
	Male   OutfitRecord
	Female OutfitRecord
}

// For returns the outfit for a gender.
func (e Entry) For(g Gender) OutfitRecord {
	if g == Male {
		return e.Male
	}
	return e.Female
}

// Catalog is an immutable region -> outfits table.
type Catalog struct {
	entries map[string]Entry
	regions []string
}

// New copies entries into a catalog. Later changes to the map are not seen.
func New(entries map[string]Entry) *Catalog {
	c := &Catalog{
		entries: make(map[string]Entry, len(entries)),
		regions: make([]string, 0, len(entries)),
	}
	for region, entry := range entries {
		c.entries[region] = entry
		c.regions = append(c.regions, region)
	}
	sort.Strings(c.regions)
	return c
}

// Lookup returns the entry of a region.
func (c *Catalog) Lookup(region string) (Entry, bool) {
	e, ok := c.entries[region]
	return e, ok
}

// Len is the number of regions.
func (c *Catalog) Len() int {
	return len(c.regions)
}

// Regions returns all region names sorted.
func (c *Catalog) Regions() []string {
	out := make([]string, len(c.regions))
	copy(out, c.regions)
	return out
}

// Filter returns the sorted regions whose name contains query, ignoring case
// and surrounding whitespace. An empty query matches everything.
func (c *Catalog) Filter(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Regions()
	}
	var out []string
	for _, r := range c.regions {
		if strings.Contains(strings.ToLower(r), q) {
			out = append(out, r)
		}
	}
	return out
}

// Card is one outfit shown for a region.
type Card struct {
	Gender Gender
	Outfit OutfitRecord
}

// Title is the card heading, e.g. "MALE • Pheran".
func (c Card) Title() string {
	return strings.ToUpper(c.Gender.String()) + " • " + c.Outfit.Name
}

// Cards returns the region's outfits with the selected gender first.
func (c *Catalog) Cards(region string, selected Gender) ([]Card, bool) {
	e, ok := c.entries[region]
	if !ok {
		return nil, false
	}
	return []Card{
		{Gender: selected, Outfit: e.For(selected)},
		{Gender: selected.Other(), Outfit: e.For(selected.Other())},
	}, true
}

// Caption is the viewer title for an outfit of a region.
func Caption(region string, outfit OutfitRecord) string {
	return region + " — " + outfit.Name
}
