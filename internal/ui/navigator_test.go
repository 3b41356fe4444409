package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibleCount(n *Navigator) int {
	count := 0
	for _, p := range Panels() {
		if n.IsVisible(p) {
			count++
		}
	}
	return count
}

func TestNavigatorStartsOnWelcome(t *testing.T) {
	for name, n := range map[string]*Navigator{"constructor": NewNavigator(), "zero value": {}} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, Welcome, n.Active())
			assert.True(t, n.IsVisible(Welcome))
			assert.Equal(t, 1, visibleCount(n))
		})
	}
}

func TestNavigatorExactlyOneVisible(t *testing.T) {
	n := NewNavigator()
	sequence := []Panel{Gender, Region, Outfits, Viewer, Outfits, Region, Gender, Viewer, Welcome, Viewer}

	for _, p := range sequence {
		require.True(t, n.Show(p))
		assert.Equal(t, p, n.Active())
		assert.True(t, n.IsVisible(p))
		assert.Equal(t, 1, visibleCount(n), "after showing %s", p)
	}
}

func TestNavigatorShowIsIdempotent(t *testing.T) {
	n := NewNavigator()

	n.Show(Region)
	n.Show(Region)

	assert.Equal(t, Region, n.Active())
	assert.Equal(t, 1, visibleCount(n))
}

func TestNavigatorIgnoresUnknownPanel(t *testing.T) {
	n := NewNavigator()
	n.Show(Outfits)

	assert.False(t, n.Show(Panel(42)))
	assert.False(t, n.Show(Panel(-1)))

	assert.Equal(t, Outfits, n.Active())
	assert.Equal(t, 1, visibleCount(n))
	assert.False(t, n.IsVisible(Panel(42)))
}

func TestPanelNames(t *testing.T) {
	for _, p := range Panels() {
		parsed, ok := ParsePanel(p.String())
		require.True(t, ok)
		assert.Equal(t, p, parsed)
	}

	assert.Equal(t, "outfits", Outfits.String())
	assert.Equal(t, "unknown", Panel(9).String())

	_, ok := ParsePanel("settings")
	assert.False(t, ok)
}
