// Package ui tracks which screen of the viewer is visible.
package ui

import (
	"Attirra/internal/logger"

	"go.uber.org/zap"
)

// Panel is one full-window screen of the viewer.
type Panel int

const (
	Welcome Panel = iota
	Gender
	Region
	Outfits
	Viewer

	panelCount
)

var panelNames = [panelCount]string{"welcome", "gender", "region", "outfits", "viewer"}

// Panels lists every panel in flow order.
func Panels() []Panel {
	return []Panel{Welcome, Gender, Region, Outfits, Viewer}
}

func (p Panel) Valid() bool {
	return p >= 0 && p < panelCount
}

func (p Panel) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return panelNames[p]
}

// ParsePanel looks up a panel by name.
func ParsePanel(name string) (Panel, bool) {
	for i, n := range panelNames {
		if n == name {
			return Panel(i), true
		}
	}
	return 0, false
}

// Navigator keeps exactly one panel visible. Any panel can follow any other.
// The zero value shows the welcome panel.
type Navigator struct {
	visible [panelCount]bool
	active  Panel
	ready   bool
}

func NewNavigator() *Navigator {
	n := &Navigator{}
	n.init()
	return n
}

func (n *Navigator) init() {
	if n.ready {
		return
	}
	n.visible[Welcome] = true
	n.active = Welcome
	n.ready = true
}

// Show hides every panel and then reveals p. Unknown panels are ignored and
// leave the current panel visible. It reports whether p is now shown.
func (n *Navigator) Show(p Panel) bool {
	n.init()
	if !p.Valid() {
		logger.Log.Warn("Ignoring unknown panel", zap.Int("panel", int(p)))
		return false
	}
	for i := range n.visible {
		n.visible[i] = false
	}
	n.visible[p] = true
	if n.active != p {
		logger.Log.Debug("Panel shown", zap.Stringer("from", n.active), zap.Stringer("to", p))
	}
	n.active = p
	return true
}

// Active returns the visible panel.
func (n *Navigator) Active() Panel {
	n.init()
	return n.active
}

func (n *Navigator) IsVisible(p Panel) bool {
	n.init()
	return p.Valid() && n.visible[p]
}
