package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 36, c.Len())
	regions := c.Regions()
	assert.True(t, sort.StringsAreSorted(regions), "regions should be sorted")
	assert.Equal(t, "Andaman and Nicobar Islands", regions[0])

	e, ok := c.Lookup("Tamil Nadu")
	require.True(t, ok)
	assert.Equal(t, "Kanchipuram Saree", e.Female.Name)
	assert.Equal(t, "Veshti & Angavastram", e.Male.Name)

	_, ok = c.Lookup("Atlantis")
	assert.False(t, ok)
}

func TestRegionsReturnsCopy(t *testing.T) {
	c := Default()
	r := c.Regions()
	r[0] = "mutated"
	assert.NotEqual(t, "mutated", c.Regions()[0])
}

func TestNewIsolatedFromSourceMap(t *testing.T) {
	src := map[string]Entry{"Goa": entry("a", "b", "c", "d")}
	c := New(src)
	delete(src, "Goa")

	_, ok := c.Lookup("Goa")
	assert.True(t, ok)
}

func TestFilter(t *testing.T) {
	c := Default()

	assert.Equal(t, c.Regions(), c.Filter("  "))
	assert.Equal(t, []string{"Andhra Pradesh", "Arunachal Pradesh", "Himachal Pradesh", "Madhya Pradesh", "Uttar Pradesh"}, c.Filter("PRADESH"))
	assert.Equal(t, []string{"Kerala"}, c.Filter(" ker "))
	assert.Empty(t, c.Filter("zzz"))
}

func TestCardsPutSelectedGenderFirst(t *testing.T) {
	c := Default()

	cards, ok := c.Cards("Kerala", Male)
	require.True(t, ok)
	require.Len(t, cards, 2)
	assert.Equal(t, Male, cards[0].Gender)
	assert.Equal(t, "Mundu & Shirt", cards[0].Outfit.Name)
	assert.Equal(t, Female, cards[1].Gender)
	assert.Equal(t, "Kasavu Saree", cards[1].Outfit.Name)

	assert.Equal(t, "MALE • Mundu & Shirt", cards[0].Title())
	assert.Equal(t, "FEMALE • Kasavu Saree", cards[1].Title())

	cards, _ = c.Cards("Kerala", Female)
	assert.Equal(t, Female, cards[0].Gender)

	_, ok = c.Cards("Nowhere", Female)
	assert.False(t, ok)
}

func TestCaption(t *testing.T) {
	e, _ := Default().Lookup("Tamil Nadu")
	assert.Equal(t, "Tamil Nadu — Kanchipuram Saree", Caption("Tamil Nadu", e.Female))
}

func TestGender(t *testing.T) {
	assert.Equal(t, Male, ParseGender("male"))
	assert.Equal(t, Male, ParseGender(" Male "))
	assert.Equal(t, Female, ParseGender("female"))
	assert.Equal(t, Female, ParseGender(""), "empty value falls back to female")
	assert.Equal(t, "male", Male.String())
	assert.Equal(t, "female", Female.String())
	assert.Equal(t, Female, Male.Other())
	assert.Equal(t, Male, Female.Other())
}
