package scene

import (
	"context"
	"errors"
	"io/fs"
	"math"
	"testing"
	"time"

	"Attirra/internal/catalog"
	"Attirra/internal/renderer"
	"Attirra/internal/resolver"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	models  []*renderer.Model
	removed []*renderer.Model
}

func (r *fakeRenderer) AddModel(model *renderer.Model) {
	r.models = append(r.models, model)
}

func (r *fakeRenderer) RemoveModel(model *renderer.Model) {
	for i, m := range r.models {
		if m == model {
			r.models = append(r.models[:i], r.models[i+1:]...)
			break
		}
	}
	r.removed = append(r.removed, model)
}

func (r *fakeRenderer) has(model *renderer.Model) bool {
	for _, m := range r.models {
		if m == model {
			return true
		}
	}
	return false
}

// fakeLoader serves a fresh model for every known path and panics on the
// paths in crash.
type fakeLoader struct {
	known map[string]bool
	crash map[string]bool
	calls []string
}

func newFakeLoader(paths ...string) *fakeLoader {
	l := &fakeLoader{known: make(map[string]bool), crash: make(map[string]bool)}
	for _, p := range paths {
		l.known[p] = true
	}
	return l
}

func (l *fakeLoader) Load(_ context.Context, path string) (*renderer.Model, error) {
	l.calls = append(l.calls, path)
	if l.crash[path] {
		panic("index out of range [7] with length 1")
	}
	if !l.known[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	model := renderer.CreateModel([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, nil, []int32{0, 1, 2})
	model.SourcePath = path
	model.Material = renderer.NewMaterial(path, mgl32.Vec3{1, 1, 1}, 0.5)
	return model, nil
}

// queueScheduler runs background work inline and holds main-thread work
// until drain, like one frame boundary.
type queueScheduler struct {
	main []func()
}

func (s *queueScheduler) Background(task func()) { task() }

func (s *queueScheduler) Main(task func()) { s.main = append(s.main, task) }

func (s *queueScheduler) drain() {
	tasks := s.main
	s.main = nil
	for _, task := range tasks {
		task()
	}
}

type fixture struct {
	rend   *fakeRenderer
	loader *fakeLoader
	sched  *queueScheduler
	mgr    *Manager
}

func newFixture(t *testing.T, paths ...string) *fixture {
	t.Helper()
	f := &fixture{
		rend:   &fakeRenderer{},
		loader: newFakeLoader(paths...),
		sched:  &queueScheduler{},
	}
	f.mgr = NewManager(f.rend, f.loader, f.sched, renderer.NewDefaultCamera(800, 600), DefaultOptions())
	require.NoError(t, f.mgr.Init())
	return f
}

type doneRecorder struct {
	calls int
	path  string
	err   error
}

func (d *doneRecorder) done(path string, err error) {
	d.calls++
	d.path = path
	d.err = err
}

func TestInitAddsLightsAndGround(t *testing.T) {
	f := newFixture(t)

	require.Len(t, f.mgr.Lights, 2)
	assert.Equal(t, renderer.HemisphereLight, f.mgr.Lights[0].Mode)
	assert.InDelta(t, 0.95, f.mgr.Lights[0].Intensity, 1e-6)
	assert.Equal(t, renderer.DirectionalLight, f.mgr.Lights[1].Mode)
	assert.Equal(t, mgl32.Vec3{2, 3, 1.5}, f.mgr.Lights[1].Position)

	ground := f.mgr.Ground()
	require.NotNil(t, ground)
	assert.True(t, f.rend.has(ground))
	assert.InDelta(t, 0.96, ground.Material.Roughness, 1e-6)

	require.NoError(t, f.mgr.Init())
	assert.Len(t, f.rend.models, 1, "Init runs once")
}

func TestLoadMannequin(t *testing.T) {
	f := newFixture(t, "models/mannequin-female.glb")

	f.mgr.LoadMannequin(context.Background(), catalog.Female)
	assert.True(t, f.mgr.Loading())
	assert.Nil(t, f.mgr.Mannequin(), "nothing changes before the main thread runs")

	f.sched.drain()
	assert.False(t, f.mgr.Loading())

	mannequin := f.mgr.Mannequin()
	require.NotNil(t, mannequin)
	assert.True(t, f.rend.has(mannequin))
	assert.InDelta(t, math.Pi, math.Abs(float64(mannequin.Yaw())), 1e-4)
	assert.Zero(t, mannequin.Alpha())

	start := time.Unix(0, 0)
	f.mgr.Update(start)
	f.mgr.Update(start.Add(time.Second))
	assert.InDelta(t, 0, mannequin.Yaw(), 1e-5)
	assert.Equal(t, float32(1), mannequin.Alpha())
}

func TestLoadMannequinReplacesPrevious(t *testing.T) {
	f := newFixture(t, "models/mannequin-female.glb", "models/mannequin-male.glb")

	f.mgr.LoadMannequin(context.Background(), catalog.Female)
	f.sched.drain()
	first := f.mgr.Mannequin()

	f.mgr.LoadMannequin(context.Background(), catalog.Male)
	f.sched.drain()
	second := f.mgr.Mannequin()

	require.NotNil(t, second)
	assert.Equal(t, "models/mannequin-male.glb", second.SourcePath)
	assert.False(t, f.rend.has(first))
	assert.True(t, first.Disposed())
	assert.True(t, first.Material.Disposed())
	assert.Len(t, f.rend.models, 2, "ground plus one mannequin")
}

func TestMissingMannequinIsIgnored(t *testing.T) {
	f := newFixture(t, "models/female/goa.glb")

	f.mgr.LoadMannequin(context.Background(), catalog.Female)
	f.sched.drain()
	assert.Nil(t, f.mgr.Mannequin())

	var d doneRecorder
	f.mgr.LoadAndShowModel(context.Background(), "models/female/goa.glb", "Goa — Pano Bhaju", "Blouse", d.done)
	f.sched.drain()

	require.NoError(t, d.err)
	require.NotNil(t, f.mgr.Outfit())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, f.mgr.Outfit().Position)
}

func TestMissingMannequinClearsPrevious(t *testing.T) {
	f := newFixture(t, "models/mannequin-male.glb", "models/female/goa.glb")
	f.mgr.LoadMannequin(context.Background(), catalog.Male)
	f.sched.drain()
	male := f.mgr.Mannequin()
	require.NotNil(t, male)

	f.mgr.LoadMannequin(context.Background(), catalog.Female)
	f.sched.drain()

	assert.Nil(t, f.mgr.Mannequin())
	assert.False(t, f.rend.has(male))
	assert.True(t, male.Disposed())

	f.mgr.LoadAndShowModel(context.Background(), "models/female/goa.glb", "Goa", "", nil)
	f.sched.drain()
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, f.mgr.Outfit().Position)
	assert.Len(t, f.rend.models, 2, "ground plus the outfit")
}

func TestLoadAndShowModel(t *testing.T) {
	f := newFixture(t, "models/mannequin-male.glb", "models/punjab.glb")
	f.mgr.LoadMannequin(context.Background(), catalog.Male)
	f.sched.drain()

	var d doneRecorder
	f.mgr.LoadAndShowModel(context.Background(), "models/punjab.glb", "Punjab — Kurta Pajama", "Long tunic", d.done)
	assert.Empty(t, f.mgr.Caption().Title, "caption waits for the model")
	f.sched.drain()

	assert.Equal(t, 1, d.calls)
	assert.NoError(t, d.err)
	assert.Equal(t, "models/punjab.glb", d.path)

	outfit := f.mgr.Outfit()
	require.NotNil(t, outfit)
	assert.True(t, f.rend.has(outfit))
	assert.Equal(t, f.mgr.Mannequin().Position, outfit.Position)
	assert.Equal(t, Caption{"Punjab — Kurta Pajama", "Long tunic"}, f.mgr.Caption())
	assert.Zero(t, outfit.Alpha())
}

func TestOutfitFadeAndCameraFocus(t *testing.T) {
	f := newFixture(t, "models/kerala.glb")
	startX := f.mgr.Camera.Position.X()

	f.mgr.LoadAndShowModel(context.Background(), "models/kerala.glb", "", "", nil)
	f.sched.drain()
	outfit := f.mgr.Outfit()

	start := time.Unix(0, 0)
	f.mgr.Update(start)
	f.mgr.Update(start.Add(300 * time.Millisecond))
	assert.InDelta(t, 0.5, outfit.Alpha(), 1e-3)

	f.mgr.Update(start.Add(time.Second))
	assert.Equal(t, float32(1), outfit.Alpha())
	pos := f.mgr.Camera.Position
	assert.InDelta(t, startX, pos.X(), 1e-3)
	assert.InDelta(t, 1.55, pos.Y(), 1e-3)
	assert.InDelta(t, 2.4, pos.Z(), 1e-3)

	assert.Equal(t, "Outfit", f.mgr.Caption().Title, "empty titles fall back")
}

func TestFailedLoadKeepsSceneAndCaption(t *testing.T) {
	f := newFixture(t, "models/goa.glb")
	f.mgr.LoadAndShowModel(context.Background(), "models/goa.glb", "Goa — Kunbi", "Checked sari", nil)
	f.sched.drain()
	shown := f.mgr.Outfit()

	var d doneRecorder
	f.mgr.LoadAndShowModel(context.Background(), "models/missing.glb", "Missing", "", d.done)
	f.sched.drain()

	assert.ErrorIs(t, d.err, fs.ErrNotExist)
	assert.Same(t, shown, f.mgr.Outfit())
	assert.False(t, shown.Disposed())
	assert.Equal(t, "Goa — Kunbi", f.mgr.Caption().Title)
}

func TestResolveAndShowFirstHit(t *testing.T) {
	candidates := resolver.Candidates("Tamil Nadu", catalog.Female)
	f := newFixture(t, candidates[2], candidates[3])

	var d doneRecorder
	f.mgr.ResolveAndShow(context.Background(), candidates, "Tamil Nadu — Kanchipuram Silk Saree", "", d.done)
	f.sched.drain()

	require.NoError(t, d.err)
	assert.Equal(t, "models/outfits/tamil_nadu_female.glb", d.path)
	assert.Equal(t, candidates[:3], f.loader.calls, "probing stops at the first success")
	assert.Equal(t, d.path, f.mgr.Outfit().SourcePath)
}

func TestResolveAndShowExhausted(t *testing.T) {
	candidates := resolver.Candidates("Tamil Nadu", catalog.Female)
	f := newFixture(t)

	var d doneRecorder
	f.mgr.ResolveAndShow(context.Background(), candidates, "Tamil Nadu — Kanchipuram Silk Saree", "", d.done)
	f.sched.drain()

	var exhausted *resolver.ExhaustedError
	require.True(t, errors.As(d.err, &exhausted))
	assert.Equal(t, candidates, exhausted.Attempted)
	assert.Nil(t, f.mgr.Outfit())
	assert.Empty(t, f.mgr.Caption().Title)
}

func TestResolveAndShowSurvivesCrashingCandidate(t *testing.T) {
	candidates := resolver.Candidates("Kerala", catalog.Male)
	f := newFixture(t, candidates[1])
	f.loader.crash[candidates[0]] = true

	var d doneRecorder
	f.mgr.ResolveAndShow(context.Background(), candidates, "Kerala", "", d.done)
	f.sched.drain()

	require.Equal(t, 1, d.calls)
	require.NoError(t, d.err)
	assert.Equal(t, candidates[1], d.path)
	assert.Equal(t, candidates[:2], f.loader.calls)
	assert.False(t, f.mgr.Loading())
}

func TestCrashingLoadReportsError(t *testing.T) {
	f := newFixture(t)
	f.loader.crash["models/kerala.glb"] = true

	var d doneRecorder
	f.mgr.LoadAndShowModel(context.Background(), "models/kerala.glb", "Kerala", "", d.done)
	f.sched.drain()

	require.Error(t, d.err)
	assert.Contains(t, d.err.Error(), "models/kerala.glb")
	assert.Nil(t, f.mgr.Outfit())
	assert.False(t, f.mgr.Loading())
}

func TestResolveAndShowNoCandidates(t *testing.T) {
	f := newFixture(t)

	var d doneRecorder
	f.mgr.ResolveAndShow(context.Background(), nil, "", "", d.done)
	f.sched.drain()

	assert.ErrorIs(t, d.err, resolver.ErrNoCandidates)
	assert.Empty(t, f.loader.calls)
}

func TestStaleCompletionIsDiscarded(t *testing.T) {
	f := newFixture(t, "models/kerala.glb", "models/punjab.glb")

	var first, second doneRecorder
	f.mgr.LoadAndShowModel(context.Background(), "models/kerala.glb", "Kerala", "", first.done)
	f.mgr.LoadAndShowModel(context.Background(), "models/punjab.glb", "Punjab", "", second.done)
	f.sched.drain()

	assert.Zero(t, first.calls, "superseded request reports nothing")
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, "models/punjab.glb", f.mgr.Outfit().SourcePath)
	assert.Equal(t, "Punjab", f.mgr.Caption().Title)
	assert.Len(t, f.rend.models, 2, "ground plus the latest outfit only")
	assert.False(t, f.mgr.Loading())
}

func TestStaleMannequinIsDiscarded(t *testing.T) {
	f := newFixture(t, "models/mannequin-female.glb", "models/mannequin-male.glb")

	f.mgr.LoadMannequin(context.Background(), catalog.Female)
	f.mgr.LoadMannequin(context.Background(), catalog.Male)
	f.sched.drain()

	assert.Equal(t, "models/mannequin-male.glb", f.mgr.Mannequin().SourcePath)
	assert.Len(t, f.rend.models, 2)
}

func TestReplacingOutfitStopsItsFade(t *testing.T) {
	f := newFixture(t, "models/kerala.glb", "models/punjab.glb")

	f.mgr.LoadAndShowModel(context.Background(), "models/kerala.glb", "Kerala", "", nil)
	f.sched.drain()
	first := f.mgr.Outfit()
	f.mgr.LoadAndShowModel(context.Background(), "models/punjab.glb", "Punjab", "", nil)
	f.sched.drain()

	start := time.Unix(0, 0)
	f.mgr.Update(start)
	f.mgr.Update(start.Add(time.Second))

	assert.True(t, first.Disposed())
	assert.Zero(t, first.Alpha(), "disposed outfit is no longer animated")
	assert.Equal(t, float32(1), f.mgr.Outfit().Alpha())
}

func TestDispose(t *testing.T) {
	f := newFixture(t, "models/mannequin-male.glb", "models/punjab.glb")
	f.mgr.LoadMannequin(context.Background(), catalog.Male)
	f.mgr.LoadAndShowModel(context.Background(), "models/punjab.glb", "Punjab", "", nil)
	f.sched.drain()

	f.mgr.Dispose()

	assert.Empty(t, f.rend.models)
	assert.Nil(t, f.mgr.Mannequin())
	assert.Nil(t, f.mgr.Outfit())
	assert.Nil(t, f.mgr.Ground())
}
