package scene

import (
	"fmt"
	"time"

	"fisheye/internal/logger"
)

// MaxFrameDt bounds the scroll advance of a single frame, so a stalled host
// (a backgrounded window, a debugger pause) resumes without a visual jump.
const MaxFrameDt = 0.05 // seconds

// maxContentScale caps the device pixel ratio used for the backing surface.
const maxContentScale = 2.0

// ScrollState is the accumulated scroll offset in pixels. It only ever
// grows; consumers reduce it modulo the text block height.
type ScrollState struct {
	Offset float64
	Speed  float64 // pixels per second
}

// Advance moves the offset forward by one frame's clamped delta time.
func (s *ScrollState) Advance(dt float64) {
	s.Offset += s.Speed * dt
}

// frameClock produces the per-frame delta time: zero on the first tick,
// clamped to MaxFrameDt afterwards.
type frameClock struct {
	last    time.Time
	started bool
}

func (c *frameClock) Dt(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDt {
		return MaxFrameDt
	}
	return dt
}

// viewport tracks the drawable dimensions in device pixels.
type viewport struct {
	width  int
	height int
}

// set updates the dimensions, reporting whether they actually changed.
func (v *viewport) set(width, height int) bool {
	if v.width == width && v.height == height {
		return false
	}
	v.width = width
	v.height = height
	return true
}

// Scene owns the whole frame pipeline: the clock and scroll state, the
// compositor, the distortion renderer, and their shared viewport. All frame
// work runs on the single thread that calls Run; the compositor's image has
// one writer and one reader per frame, so nothing locks.
type Scene struct {
	opts     Options
	log      *logger.Logger
	display  Display
	comp     *Compositor
	renderer *Renderer

	view   viewport
	scroll ScrollState
	clock  frameClock

	resizePending bool
	closed        bool
}

// New builds a scene on an initialized display. Construction failures — a
// missing font, a shader that does not compile — surface here and leave no
// partial scene behind.
func New(display Display, opts Options, log *logger.Logger) (*Scene, error) {
	opts = opts.withDefaults()

	width, height := display.FramebufferSize()
	scale := clampScale(display.ContentScale())

	comp, err := NewCompositor(width, height, scale, opts.FontPath)
	if err != nil {
		return nil, err
	}

	renderer, err := NewRenderer(width, height, Params{K: opts.K, Kcube: opts.Kcube})
	if err != nil {
		comp.Close()
		return nil, err
	}

	s := &Scene{
		opts:     opts,
		log:      log,
		display:  display,
		comp:     comp,
		renderer: renderer,
		view:     viewport{width: width, height: height},
		scroll:   ScrollState{Speed: opts.Speed},
	}

	// The callback only records that a resize happened; it is consumed at
	// the start of the next tick, never mid-frame.
	display.SetResizeCallback(func(int, int) { s.resizePending = true })

	log.Infof("Scene ready: %dx%d, speed %.1f px/s, k=%.3f kcube=%.3f",
		width, height, opts.Speed, opts.K, opts.Kcube)

	return s, nil
}

// Step runs a single frame: apply any pending resize, advance the scroll
// state by the clamped delta time, composite the surface, upload it and draw
// the distorted quad.
func (s *Scene) Step(now time.Time) error {
	s.applyPendingResize()

	s.scroll.Advance(s.clock.Dt(now))

	img := s.comp.Composite(s.opts.Text, s.scroll.Offset)
	if err := s.renderer.Upload(img); err != nil {
		return fmt.Errorf("texture upload failed: %v", err)
	}
	s.renderer.Draw()
	return nil
}

// Run drives frames until the display asks to close. With a frame-rate cap
// the loop sleeps out the remainder of each frame; without one the swap is
// the only point a frame waits at.
func (s *Scene) Run() error {
	for !s.display.ShouldClose() {
		frameStart := time.Now()
		if err := s.Step(frameStart); err != nil {
			return err
		}
		s.display.SwapBuffers()
		s.display.PollEvents()

		if d := frameSleep(s.opts.FrameRate, time.Since(frameStart)); d > 0 {
			time.Sleep(d)
		}
	}
	return nil
}

// frameSleep returns how long a frame that already took elapsed must still
// wait to hold the target rate. A rate of zero or less means no cap.
func frameSleep(rate int, elapsed time.Duration) time.Duration {
	if rate <= 0 {
		return 0
	}
	target := time.Second / time.Duration(rate)
	if elapsed >= target {
		return 0
	}
	return target - elapsed
}

// applyPendingResize consumes a coalesced resize notification. Repeated
// notifications with unchanged dimensions reallocate nothing.
func (s *Scene) applyPendingResize() {
	if !s.resizePending {
		return
	}
	s.resizePending = false

	width, height := s.display.FramebufferSize()
	if width <= 0 || height <= 0 {
		// Minimized; keep the previous surface until real dimensions arrive.
		s.log.Warnf("Ignoring resize to %dx%d", width, height)
		return
	}
	if !s.view.set(width, height) {
		return
	}

	scale := clampScale(s.display.ContentScale())
	if err := s.comp.Resize(width, height, scale); err != nil {
		s.log.Errorf("Resize to %dx%d failed: %v", width, height, err)
		return
	}
	s.renderer.Resize(width, height)
	lines, block := s.comp.Metrics(s.opts.Text)
	s.log.Debugf("Resized to %dx%d (scale %.2f): %d lines, block %.0fpx",
		width, height, scale, lines, block)
}

// Close stops consuming resize events and releases the GPU and surface
// resources. The host calls it exactly once; a repeated call is a no-op.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true

	s.display.SetResizeCallback(nil)
	s.renderer.Close()
	s.comp.Close()
	s.log.Infof("Scene closed")
}

// clampScale caps the device pixel ratio at maxContentScale.
func clampScale(scale float64) float64 {
	if scale > maxContentScale {
		return maxContentScale
	}
	if scale <= 0 {
		return 1
	}
	return scale
}
