// Package scene owns what is on stage: the camera, the lights, the floor, and
// at most one mannequin and one outfit.
package scene

import (
	"context"
	"fmt"
	"math"
	"time"

	"Attirra/internal/behaviour"
	"Attirra/internal/catalog"
	"Attirra/internal/loader"
	"Attirra/internal/logger"
	"Attirra/internal/renderer"
	"Attirra/internal/resolver"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Renderer is the part of the render backend the scene drives.
type Renderer interface {
	AddModel(model *renderer.Model)
	RemoveModel(model *renderer.Model)
}

// Loader decodes one asset path into a model.
type Loader interface {
	Load(ctx context.Context, path string) (*renderer.Model, error)
}

// Scheduler moves work off and back onto the render thread.
type Scheduler interface {
	// Background runs task on a worker.
	Background(task func())
	// Main queues task for the render thread.
	Main(task func())
}

// DoneFunc is told the outcome of a request. path is the asset that was
// shown, err is non-nil on failure. It is not called for requests that were
// superseded before they finished.
type DoneFunc func(path string, err error)

type Options struct {
	Fade  time.Duration // Opacity 0 to 1 for every newly attached model
	Spin  time.Duration // Mannequin entry turn
	Focus time.Duration // Camera move towards a new outfit
}

func DefaultOptions() Options {
	return Options{
		Fade:  600 * time.Millisecond,
		Spin:  800 * time.Millisecond,
		Focus: 700 * time.Millisecond,
	}
}

var (
	// Camera position after an outfit is shown. X is kept from the current view.
	focusHeight   float32 = 1.55
	focusDistance float32 = 2.4

	groundColor     uint32  = 0xece4d6
	groundRoughness float32 = 0.96
	groundRadius    float32 = 1.2
	groundSegments          = 64
)

// Caption is the title and description shown with the current outfit.
type Caption struct {
	Title string
	Desc  string
}

// slot holds the live model of one role and the tweens animating it.
type slot struct {
	name       string
	model      *renderer.Model
	generation uint64
	tweens     []*behaviour.Tween
}

// next invalidates every request issued before it.
func (s *slot) next() uint64 {
	s.generation++
	return s.generation
}

func (s *slot) current(generation uint64) bool {
	return s.generation == generation
}

// Manager is confined to the render thread. Loads run through the Scheduler
// and come back to that thread before anything in the scene changes.
type Manager struct {
	Camera *renderer.Camera
	Lights []*renderer.Light

	renderer Renderer
	loader   Loader
	sched    Scheduler
	opts     Options

	tweens    *behaviour.BehaviourManager
	ground    *renderer.Model
	mannequin slot
	outfit    slot
	focus     *behaviour.Tween
	caption   Caption
	pending   int
}

func NewManager(r Renderer, l Loader, s Scheduler, camera *renderer.Camera, opts Options) *Manager {
	return &Manager{
		Camera:    camera,
		renderer:  r,
		loader:    l,
		sched:     s,
		opts:      opts,
		tweens:    behaviour.NewBehaviourManager(),
		mannequin: slot{name: "mannequin"},
		outfit:    slot{name: "outfit"},
	}
}

// Init adds the lights and the floor. It runs once, before the first frame.
func (m *Manager) Init() error {
	if m.ground != nil {
		return nil
	}
	m.Lights = []*renderer.Light{
		renderer.CreateHemisphereLight(renderer.HexColor(0xffffff), renderer.HexColor(0x777777), 0.95),
		renderer.CreateDirectionalLight(mgl32.Vec3{2, 3, 1.5}, renderer.HexColor(0xffffff), 0.9),
	}

	ground, err := loader.LoadDisk(groundRadius, groundSegments)
	if err != nil {
		return fmt.Errorf("create ground: %w", err)
	}
	ground.Material = renderer.NewMaterial("ground", renderer.HexColor(groundColor), groundRoughness)
	m.renderer.AddModel(ground)
	m.ground = ground
	return nil
}

// Update advances every running tween and the camera. Called once per frame.
func (m *Manager) Update(now time.Time) {
	m.tweens.UpdateAll(now)
	if m.Camera != nil {
		m.Camera.Update()
	}
}

// LoadMannequin replaces the mannequin with the one for g. A missing
// mannequin is not an error: the stage is left without one and outfits
// still load.
func (m *Manager) LoadMannequin(ctx context.Context, g catalog.Gender) {
	path := resolver.MannequinPath(g)
	generation := m.mannequin.next()
	m.pending++

	m.sched.Background(func() {
		model, err := m.load(ctx, path)
		m.sched.Main(func() {
			m.pending--
			if !m.mannequin.current(generation) {
				discard(model)
				return
			}
			if err != nil {
				logger.Log.Warn("Mannequin not found", zap.String("path", path), zap.Error(err))
				m.clear(&m.mannequin)
				return
			}
			m.attachMannequin(model)
		})
	})
}

// LoadAndShowModel loads path and shows it as the outfit.
func (m *Manager) LoadAndShowModel(ctx context.Context, path, title, desc string, done DoneFunc) {
	generation := m.outfit.next()
	m.pending++

	m.sched.Background(func() {
		model, err := m.load(ctx, path)
		m.sched.Main(func() {
			m.finishOutfit(generation, path, model, err, Caption{title, desc}, done)
		})
	})
}

// ResolveAndShow shows the first of candidates that loads. On failure done
// receives a *resolver.ExhaustedError naming every path tried.
func (m *Manager) ResolveAndShow(ctx context.Context, candidates []string, title, desc string, done DoneFunc) {
	generation := m.outfit.next()
	m.pending++

	m.sched.Background(func() {
		outcome := resolver.Resolve[*renderer.Model](ctx, candidates, m.load)
		m.sched.Main(func() {
			if !outcome.OK() {
				logger.Log.Error("Loading model failed",
					zap.String("title", title),
					zap.Strings("attempted", outcome.Attempted),
					zap.Error(outcome.Err))
			}
			m.finishOutfit(generation, outcome.Path, outcome.Asset, outcome.Err, Caption{title, desc}, done)
		})
	})
}

// load turns a loader panic into an error so the request still completes.
func (m *Manager) load(ctx context.Context, path string) (model *renderer.Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			model, err = nil, fmt.Errorf("load %s: %v", path, r)
		}
	}()
	return m.loader.Load(ctx, path)
}

func (m *Manager) finishOutfit(generation uint64, path string, model *renderer.Model, err error, caption Caption, done DoneFunc) {
	m.pending--
	if !m.outfit.current(generation) {
		logger.Log.Debug("Discarding superseded outfit", zap.String("path", path))
		discard(model)
		return
	}
	if err != nil {
		if done != nil {
			done(path, err)
		}
		return
	}

	m.attachOutfit(model, caption)
	if done != nil {
		done(path, nil)
	}
}

func (m *Manager) attachMannequin(model *renderer.Model) {
	m.clear(&m.mannequin)

	model.SetPosition(0, 0, 0)
	model.SetYaw(math.Pi)
	m.renderer.AddModel(model)
	m.mannequin.model = model

	spin := behaviour.NewTween("spin", m.opts.Spin, behaviour.CubicOut).OnUpdate(func(p float32) {
		model.SetYaw(behaviour.Lerp(math.Pi, 0, p))
	})
	m.start(&m.mannequin, spin, m.fadeIn(model))
	logger.Log.Info("Mannequin shown", zap.String("path", model.SourcePath))
}

func (m *Manager) attachOutfit(model *renderer.Model, caption Caption) {
	m.clear(&m.outfit)

	if m.mannequin.model != nil {
		p := m.mannequin.model.Position
		model.SetPosition(p.X(), p.Y(), p.Z())
	} else {
		model.SetPosition(0, 0, 0)
	}
	m.renderer.AddModel(model)
	m.outfit.model = model
	m.start(&m.outfit, m.fadeIn(model))
	m.focusCamera()

	if caption.Title == "" {
		caption.Title = "Outfit"
	}
	m.caption = caption
	logger.Log.Info("Outfit shown", zap.String("path", model.SourcePath), zap.String("title", caption.Title))
}

func (m *Manager) fadeIn(model *renderer.Model) *behaviour.Tween {
	model.SetAlpha(0)
	return behaviour.NewTween("fade", m.opts.Fade, behaviour.Linear).OnUpdate(func(p float32) {
		model.SetAlpha(p)
	})
}

func (m *Manager) focusCamera() {
	if m.Camera == nil {
		return
	}
	if m.focus != nil {
		m.focus.Stop()
	}
	from := m.Camera.Position
	to := mgl32.Vec3{from.X(), focusHeight, focusDistance}
	m.focus = behaviour.NewTween("focus", m.opts.Focus, behaviour.CubicOut).OnUpdate(func(p float32) {
		m.Camera.MoveTo(behaviour.LerpVec3(from, to, p))
	})
	m.tweens.Add(m.focus)
}

func (m *Manager) start(s *slot, tweens ...*behaviour.Tween) {
	for _, t := range tweens {
		s.tweens = append(s.tweens, t)
		m.tweens.Add(t)
	}
}

// clear takes the slot's model off stage and frees it.
func (m *Manager) clear(s *slot) {
	for _, t := range s.tweens {
		t.Stop()
		m.tweens.Remove(t)
	}
	s.tweens = nil
	if s.model == nil {
		return
	}
	m.renderer.RemoveModel(s.model)
	s.model.Dispose()
	logger.Log.Debug("Disposed model", zap.String("role", s.name), zap.String("path", s.model.SourcePath))
	s.model = nil
}

func discard(model *renderer.Model) {
	if model != nil {
		model.Dispose()
	}
}

// Dispose removes every model, including the floor.
func (m *Manager) Dispose() {
	m.mannequin.next()
	m.outfit.next()
	m.clear(&m.mannequin)
	m.clear(&m.outfit)
	if m.ground != nil {
		m.renderer.RemoveModel(m.ground)
		m.ground.Dispose()
		m.ground = nil
	}
	m.tweens.Clear()
}

func (m *Manager) Mannequin() *renderer.Model {
	return m.mannequin.model
}

func (m *Manager) Outfit() *renderer.Model {
	return m.outfit.model
}

func (m *Manager) Ground() *renderer.Model {
	return m.ground
}

// Caption is the caption of the outfit on stage. It only changes when an
// outfit is actually shown.
func (m *Manager) Caption() Caption {
	return m.caption
}

// Loading reports whether any request is still in flight.
func (m *Manager) Loading() bool {
	return m.pending > 0
}
