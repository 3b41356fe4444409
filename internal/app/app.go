// Package app holds the viewer's selection state and the handlers behind
// every button.
package app

import (
	"context"
	"fmt"
	"strings"

	"Attirra/internal/catalog"
	"Attirra/internal/logger"
	"Attirra/internal/resolver"
	"Attirra/internal/scene"
	"Attirra/internal/ui"

	"go.uber.org/zap"
)

// Tip is shown under the outfit cards.
const Tip = "Tip: Place GLB files as models/<gender>/<state_slug>.glb or models/outfits/<state_slug>_<gender>.glb"

// Alerter shows a message the user has to dismiss.
type Alerter interface {
	Alert(title, message string)
}

// Stage is the part of the scene manager the handlers drive.
type Stage interface {
	LoadMannequin(ctx context.Context, g catalog.Gender)
	LoadAndShowModel(ctx context.Context, path, title, desc string, done scene.DoneFunc)
	ResolveAndShow(ctx context.Context, candidates []string, title, desc string, done scene.DoneFunc)
	Caption() scene.Caption
	Loading() bool
}

// State is what the user last picked. There is no history.
type State struct {
	Gender catalog.Gender
	Region string
	Search string
}

// Featured is an outfit with a fixed model path, shown regardless of region.
type Featured struct {
	Model string
	Title string
	Desc  string
}

type App struct {
	State State

	ctx      context.Context
	catalog  *catalog.Catalog
	nav      *ui.Navigator
	stage    Stage
	alerter  Alerter
	featured []Featured
}

func New(ctx context.Context, cat *catalog.Catalog, nav *ui.Navigator, stage Stage, alerter Alerter, featured []Featured) *App {
	return &App{
		State:    State{Gender: catalog.Female},
		ctx:      ctx,
		catalog:  cat,
		nav:      nav,
		stage:    stage,
		alerter:  alerter,
		featured: append([]Featured(nil), featured...),
	}
}

// Panel is the panel to draw.
func (a *App) Panel() ui.Panel {
	return a.nav.Active()
}

func (a *App) Caption() scene.Caption {
	return a.stage.Caption()
}

func (a *App) Loading() bool {
	return a.stage.Loading()
}

func (a *App) Featured() []Featured {
	return a.featured
}

// GotIt leaves the welcome panel.
func (a *App) GotIt() {
	a.nav.Show(ui.Gender)
}

// SelectGender records g, starts loading its mannequin and moves on to regions.
func (a *App) SelectGender(g catalog.Gender) {
	a.State.Gender = g
	a.stage.LoadMannequin(a.ctx, g)
	a.nav.Show(ui.Region)
}

// SelectRegion records region and shows its outfits.
func (a *App) SelectRegion(region string) {
	a.State.Region = region
	a.nav.Show(ui.Outfits)
}

func (a *App) SetSearch(query string) {
	a.State.Search = query
}

// VisibleRegions is every region matching the search query, sorted.
func (a *App) VisibleRegions() []string {
	return a.catalog.Filter(a.State.Search)
}

// OutfitCards lists the selected region's outfits, selected gender first.
// It is false for a region with no outfits.
func (a *App) OutfitCards() ([]catalog.Card, bool) {
	return a.catalog.Cards(a.State.Region, a.State.Gender)
}

// TryOutfit looks for the selected region's model for g and shows it. When
// no candidate loads the user is told every path that was tried.
func (a *App) TryOutfit(g catalog.Gender) {
	region := a.State.Region
	entry, ok := a.catalog.Lookup(region)
	if !ok {
		logger.Log.Warn("No outfits defined for region", zap.String("region", region))
		return
	}
	outfit := entry.For(g)
	candidates := resolver.Candidates(region, g)
	title := catalog.Caption(region, outfit)

	a.stage.ResolveAndShow(a.ctx, candidates, title, outfit.Desc, func(path string, err error) {
		if err != nil {
			a.alerter.Alert("Model not found", MissingModelMessage(region, g, candidates))
			return
		}
		a.nav.Show(ui.Viewer)
	})
}

// TryFeatured shows a featured outfit straight from its model path.
func (a *App) TryFeatured(f Featured) {
	title := f.Title
	if title == "" {
		title = "Outfit"
	}
	a.stage.LoadAndShowModel(a.ctx, f.Model, title, f.Desc, func(path string, err error) {
		if err != nil {
			logger.Log.Error("Loading featured outfit failed", zap.String("path", f.Model), zap.Error(err))
			a.alerter.Alert("Model not found", fmt.Sprintf("Couldn't load %s.\n\n%v", f.Model, err))
			return
		}
		a.nav.Show(ui.Viewer)
	})
}

func (a *App) BackToGender() {
	a.nav.Show(ui.Gender)
}

func (a *App) BackToRegion() {
	a.nav.Show(ui.Region)
}

func (a *App) TryAnother() {
	a.nav.Show(ui.Outfits)
}

func (a *App) ChangeRegion() {
	a.nav.Show(ui.Region)
}

func (a *App) ChangeGender() {
	a.nav.Show(ui.Gender)
}

// MissingModelMessage is the alert text listing every path that was tried.
func MissingModelMessage(region string, g catalog.Gender, candidates []string) string {
	return fmt.Sprintf("Couldn't find a model for %s (%s).\n\nTried:\n%s\n\nPlace the appropriate .glb in one of these paths.",
		region, g, strings.Join(candidates, "\n"))
}
