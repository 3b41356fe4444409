package behaviour

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float32) float32

func Linear(t float32) float32 {
	return t
}

// CubicOut starts fast and decelerates to rest.
func CubicOut(t float32) float32 {
	inv := 1 - t
	return 1 - inv*inv*inv
}

// Tween interpolates over a fixed duration, reporting eased progress to its
// update callback every frame. The final update always reports exactly 1.
type Tween struct {
	Name     string
	Duration time.Duration
	Easing   Easing

	onUpdate   func(progress float32)
	onComplete func()

	start   time.Time
	started bool
	done    bool
}

func NewTween(name string, duration time.Duration, easing Easing) *Tween {
	if easing == nil {
		easing = Linear
	}
	return &Tween{Name: name, Duration: duration, Easing: easing}
}

func (t *Tween) OnUpdate(fn func(progress float32)) *Tween {
	t.onUpdate = fn
	return t
}

func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = fn
	return t
}

func (t *Tween) Start(now time.Time) {
	t.start = now
	t.started = true
}

func (t *Tween) Update(now time.Time) bool {
	if t.done {
		return true
	}
	if !t.started {
		t.Start(now)
	}

	progress := float32(1)
	if t.Duration > 0 {
		progress = mgl32.Clamp(float32(now.Sub(t.start))/float32(t.Duration), 0, 1)
	}
	if t.onUpdate != nil {
		t.onUpdate(t.Easing(progress))
	}
	if progress < 1 {
		return false
	}

	t.done = true
	if t.onComplete != nil {
		t.onComplete()
	}
	return true
}

// Stop finishes the tween where it is, without a final update or completion.
func (t *Tween) Stop() {
	t.done = true
}

func (t *Tween) Done() bool {
	return t.done
}

func Lerp(from, to, t float32) float32 {
	return from + (to-from)*t
}

func LerpVec3(from, to mgl32.Vec3, t float32) mgl32.Vec3 {
	return from.Add(to.Sub(from).Mul(t))
}
