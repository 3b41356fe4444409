package gui

import (
	"strconv"
	"strings"

	"Attirra/internal/app"
	"Attirra/internal/catalog"
	"Attirra/internal/ui"

	"github.com/inkyblackness/imgui-go/v4"
)

const (
	panelWidth   = 560
	regionColumn = 3
	regionButton = 168
	cardWidth    = 250
)

const panelFlags = imgui.WindowFlagsNoTitleBar |
	imgui.WindowFlagsNoResize |
	imgui.WindowFlagsNoMove |
	imgui.WindowFlagsNoCollapse |
	imgui.WindowFlagsNoSavedSettings |
	imgui.WindowFlagsAlwaysAutoResize

// The built-in font has no typographic punctuation.
var asciiPunctuation = strings.NewReplacer("…", "...", "•", "-", "—", "-", "–", "-")

// view draws the active panel and routes its buttons to the app.
type view struct {
	app    *app.App
	glyphs bool // false when only the built-in font is loaded
}

func (v *view) text(s string) string {
	if v.glyphs {
		return s
	}
	return asciiPunctuation.Replace(s)
}

func (v *view) draw(display imgui.Vec2) {
	switch v.app.Panel() {
	case ui.Welcome:
		v.welcome(display)
	case ui.Gender:
		v.gender(display)
	case ui.Region:
		v.region(display)
	case ui.Outfits:
		v.outfits(display)
	case ui.Viewer:
		v.viewer()
	}
	if v.app.Loading() {
		v.loading(display)
	}
}

func genderLabel(g catalog.Gender) string {
	s := g.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func beginCentered(id string, display imgui.Vec2) bool {
	imgui.SetNextWindowPosV(imgui.Vec2{X: display.X / 2, Y: display.Y / 2}, imgui.ConditionAlways, imgui.Vec2{X: 0.5, Y: 0.5})
	return imgui.BeginV(id, nil, panelFlags)
}

func muted(s string) {
	imgui.PushStyleColor(imgui.StyleColorText, mutedColor)
	imgui.PushTextWrapPosV(panelWidth)
	imgui.Text(s)
	imgui.PopTextWrapPos()
	imgui.PopStyleColor()
}

func heading(s string) {
	imgui.PushStyleColor(imgui.StyleColorText, accentActive)
	imgui.Text(s)
	imgui.PopStyleColor()
}

func (v *view) welcome(display imgui.Vec2) {
	if beginCentered("welcome", display) {
		heading("Attirra")
		muted(v.text("Traditional outfits of India, state by state. Pick a gender and a region, " +
			"then try an outfit on the mannequin. Drag to orbit, scroll to zoom."))
		imgui.Spacing()
		if imgui.ButtonV("Got it", imgui.Vec2{X: 120}) {
			v.app.GotIt()
		}
	}
	imgui.End()
}

func (v *view) gender(display imgui.Vec2) {
	if beginCentered("gender", display) {
		heading("Choose a gender")
		imgui.Spacing()
		for i, g := range catalog.Genders {
			if i > 0 {
				imgui.SameLine()
			}
			if imgui.ButtonV(genderLabel(g), imgui.Vec2{X: 160, Y: 44}) {
				v.app.SelectGender(g)
			}
		}
	}
	imgui.End()
}

func (v *view) region(display imgui.Vec2) {
	if beginCentered("region", display) {
		heading("Choose a state or union territory")

		search := v.app.State.Search
		imgui.PushItemWidth(panelWidth)
		if imgui.InputText("##search", &search) {
			v.app.SetSearch(search)
		}
		imgui.PopItemWidth()

		regions := v.app.VisibleRegions()
		height := display.Y * 0.55
		if imgui.BeginChildV("regions", imgui.Vec2{X: panelWidth, Y: height}, false, 0) {
			if len(regions) == 0 {
				muted("No matching regions.")
			}
			for i, region := range regions {
				if i%regionColumn != 0 {
					imgui.SameLine()
				}
				if imgui.ButtonV(region, imgui.Vec2{X: regionButton}) {
					v.app.SelectRegion(region)
				}
			}
		}
		imgui.EndChild()

		if imgui.Button("Back") {
			v.app.BackToGender()
		}
	}
	imgui.End()
}

func (v *view) outfits(display imgui.Vec2) {
	if beginCentered("outfits", display) {
		heading(v.text(v.app.State.Region))

		cards, ok := v.app.OutfitCards()
		if !ok {
			muted("No outfits defined for this region.")
		}
		for i, card := range cards {
			if i > 0 {
				imgui.SameLine()
			}
			imgui.PushID(strconv.Itoa(i))
			v.card(card.Title(), card.Outfit.Desc, func() { v.app.TryOutfit(card.Gender) })
			imgui.PopID()
		}

		if featured := v.app.Featured(); len(featured) > 0 {
			imgui.Separator()
			for i, f := range featured {
				if i > 0 {
					imgui.SameLine()
				}
				title := f.Title
				if title == "" {
					title = "Outfit"
				}
				imgui.PushID("featured" + strconv.Itoa(i))
				v.card(title, f.Desc, func() { v.app.TryFeatured(f) })
				imgui.PopID()
			}
		}

		imgui.Spacing()
		muted(v.text(app.Tip))
		imgui.Spacing()
		if imgui.Button("Back to regions") {
			v.app.BackToRegion()
		}
		imgui.SameLine()
		if imgui.Button("Back to gender") {
			v.app.BackToGender()
		}
	}
	imgui.End()
}

func (v *view) card(title, desc string, try func()) {
	if imgui.BeginChildV("card", imgui.Vec2{X: cardWidth, Y: 150}, true, imgui.WindowFlagsNoScrollbar) {
		imgui.Text(v.text(title))
		imgui.PushStyleColor(imgui.StyleColorText, mutedColor)
		imgui.PushTextWrapPosV(cardWidth - 16)
		imgui.Text(v.text(desc))
		imgui.PopTextWrapPos()
		imgui.PopStyleColor()
		if imgui.Button("Try Outfit") {
			try()
		}
	}
	imgui.EndChild()
}

func (v *view) viewer() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 16, Y: 16}, imgui.ConditionAlways, imgui.Vec2{})
	if imgui.BeginV("hud", nil, panelFlags) {
		caption := v.app.Caption()
		heading(v.text(caption.Title))
		if caption.Desc != "" {
			muted(v.text(caption.Desc))
		}
		imgui.Spacing()
		if imgui.Button("Try another") {
			v.app.TryAnother()
		}
		imgui.SameLine()
		if imgui.Button("Change region") {
			v.app.ChangeRegion()
		}
		imgui.SameLine()
		if imgui.Button("Change gender") {
			v.app.ChangeGender()
		}
	}
	imgui.End()
}

func (v *view) loading(display imgui.Vec2) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: display.X - 16, Y: 16}, imgui.ConditionAlways, imgui.Vec2{X: 1})
	if imgui.BeginV("loading", nil, panelFlags|imgui.WindowFlagsNoInputs) {
		imgui.Text(v.text("Loading…"))
	}
	imgui.End()
}
