package samples

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/samples/camera"
	"github.com/gogpu/samples/surface"
	"github.com/gogpu/wgpu"
)

// fakeWindow implements Window.
type fakeWindow struct {
	w, h      int
	redraws   int
	title     string
	handleErr error
}

func (f *fakeWindow) FramebufferSize() (int, int) { return f.w, f.h }
func (f *fakeWindow) RequestRedraw()              { f.redraws++ }
func (f *fakeWindow) SetTitle(title string)       { f.title = title }

func (f *fakeWindow) SurfaceHandles() (uintptr, uintptr, error) {
	return 0, 0, f.handleErr
}

// fakeFrame implements surface.Frame.
type fakeFrame struct {
	presented, discarded bool
	presentErr           error
}

func (f *fakeFrame) CreateView(*wgpu.TextureViewDescriptor) (*wgpu.TextureView, error) {
	return &wgpu.TextureView{}, nil
}
func (f *fakeFrame) Present() error { f.presented = true; return f.presentErr }
func (f *fakeFrame) Discard()       { f.discarded = true }

// fakeTarget implements surface.Target.
type fakeTarget struct {
	configured  [][2]uint32
	acquireErrs []error
	presentErr  error
	frames      []*fakeFrame
}

func (f *fakeTarget) Configure(cfg *surface.Config) error {
	f.configured = append(f.configured, [2]uint32{cfg.Width, cfg.Height})
	return nil
}

func (f *fakeTarget) Acquire() (surface.Frame, bool, error) {
	if len(f.acquireErrs) > 0 {
		err := f.acquireErrs[0]
		f.acquireErrs = f.acquireErrs[1:]
		if err != nil {
			return nil, false, err
		}
	}
	fr := &fakeFrame{presentErr: f.presentErr}
	f.frames = append(f.frames, fr)
	return fr, false, nil
}

// fakeLoop implements EventLoop.
type fakeLoop struct {
	exited  bool
	monitor Monitor
	windows []WindowConfig
}

func (l *fakeLoop) CreateWindow(cfg WindowConfig) (Window, error) {
	l.windows = append(l.windows, cfg)
	return &fakeWindow{w: cfg.Width, h: cfg.Height}, nil
}
func (l *fakeLoop) PrimaryMonitor() (Monitor, bool) { return l.monitor, l.monitor.Width > 0 }
func (l *fakeLoop) Exit()                           { l.exited = true }

// scriptPlatform replays events until the loop exits.
type scriptPlatform struct {
	loop   *fakeLoop
	events []any
	err    error
}

func (p *scriptPlatform) Run(h Handler) error {
	h.Resumed(p.loop)
	for _, ev := range p.events {
		if p.loop.exited {
			break
		}
		switch ev := ev.(type) {
		case WindowEvent:
			h.WindowEvent(p.loop, ev)
		case DeviceEvent:
			h.DeviceEvent(p.loop, ev)
		case func():
			ev()
		}
	}
	return p.err
}

// testSample records calls and optionally exposes a camera.
type testSample struct {
	renders   []time.Duration
	renderErr error
	cam       *camera.Camera
	closed    bool
}

func (s *testSample) Render(_ *GraphicsContext, view *wgpu.TextureView, dt time.Duration) error {
	if view == nil {
		return errors.New("nil view")
	}
	s.renders = append(s.renders, dt)
	return s.renderErr
}

func (s *testSample) Close() error { s.closed = true; return nil }

type cameraSample struct {
	testSample
}

func (s *cameraSample) Camera() *camera.Camera { return s.cam }

type harness struct {
	window   *fakeWindow
	target   *fakeTarget
	ctx      *GraphicsContext
	now      time.Time
	contexts int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		window: &fakeWindow{w: 640, h: 480},
		target: &fakeTarget{},
		now:    time.Unix(1000, 0),
	}
	return h
}

func (h *harness) factory(loop EventLoop, title string, _ Requirements, cfg contextConfig) (*GraphicsContext, error) {
	h.contexts++
	h.window.title = title
	mgr, err := surface.NewManager(h.target, h.window, surface.Capabilities{
		Formats: []gputypes.TextureFormat{gputypes.TextureFormatBGRA8Unorm},
	})
	if err != nil {
		return nil, err
	}
	h.ctx = &GraphicsContext{window: h.window, manager: mgr, settings: cfg.settings}
	h.window.RequestRedraw()
	return h.ctx, nil
}

func (h *harness) advance(d time.Duration) func() {
	return func() { h.now = h.now.Add(d) }
}

func (h *harness) app(p Platform, def Definition) *App {
	return NewApp(p, def,
		withContextFactory(h.factory),
		withClock(func() time.Time { return h.now }))
}

func TestAppLifecycle(t *testing.T) {
	h := newHarness(t)
	s := &testSample{}
	loop := &fakeLoop{}
	p := &scriptPlatform{loop: loop, events: []any{
		h.advance(16 * time.Millisecond),
		RedrawRequested{},
		h.advance(20 * time.Millisecond),
		RedrawRequested{},
		CloseRequested{},
		RedrawRequested{}, // after exit, never delivered
	}}
	def := Definition{Name: "lifecycle", New: func(*GraphicsContext) (Sample, error) { return s, nil }}

	if err := h.app(p, def).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(s.renders) != 2 {
		t.Fatalf("renders = %d, want 2", len(s.renders))
	}
	if s.renders[0] != 16*time.Millisecond || s.renders[1] != 20*time.Millisecond {
		t.Errorf("frame deltas = %v, want [16ms 20ms]", s.renders)
	}
	for i, f := range h.target.frames {
		if !f.presented {
			t.Errorf("frame %d not presented", i)
		}
	}
	// One redraw from context creation plus one per rendered frame.
	if h.window.redraws != 3 {
		t.Errorf("redraw requests = %d, want 3", h.window.redraws)
	}
	if !s.closed {
		t.Error("sample not closed on exit")
	}
	if h.window.title != "Lifecycle" {
		t.Errorf("window title = %q, want default title", h.window.title)
	}
}

func TestAppResumedOnce(t *testing.T) {
	h := newHarness(t)
	loop := &fakeLoop{}
	inits := 0
	def := Definition{Name: "once", New: func(*GraphicsContext) (Sample, error) {
		inits++
		return &testSample{}, nil
	}}
	app := h.app(&scriptPlatform{loop: loop}, def)

	app.Resumed(loop)
	app.Resumed(loop)
	if h.contexts != 1 || inits != 1 {
		t.Errorf("contexts = %d, inits = %d, want 1 and 1", h.contexts, inits)
	}
}

func TestAppResizeConfigures(t *testing.T) {
	h := newHarness(t)
	loop := &fakeLoop{}
	p := &scriptPlatform{loop: loop, events: []any{
		Resized{Width: 0, Height: 0},
		Resized{Width: 800, Height: 600},
		RedrawRequested{},
		CloseRequested{},
	}}
	def := Definition{Name: "resize", New: func(*GraphicsContext) (Sample, error) { return &testSample{}, nil }}

	if err := h.app(p, def).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := [][2]uint32{{640, 480}, {1, 1}, {800, 600}}
	if len(h.target.configured) != len(want) {
		t.Fatalf("configured = %v, want %v", h.target.configured, want)
	}
	for i := range want {
		if h.target.configured[i] != want[i] {
			t.Errorf("configure %d = %v, want %v", i, h.target.configured[i], want[i])
		}
	}
}

func TestAppContextFailureIsFatal(t *testing.T) {
	loop := &fakeLoop{}
	p := &scriptPlatform{loop: loop, events: []any{RedrawRequested{}}}
	cause := errors.New("no gpu")
	def := Definition{Name: "broken", New: func(*GraphicsContext) (Sample, error) {
		t.Error("factory called without a context")
		return nil, nil
	}}
	app := NewApp(p, def, withContextFactory(func(EventLoop, string, Requirements, contextConfig) (*GraphicsContext, error) {
		return nil, cause
	}))

	err := app.Run()
	if !errors.Is(err, cause) || !IsFatal(err) {
		t.Fatalf("Run() error = %v, want fatal wrapping cause", err)
	}
	var fe *FatalError
	errors.As(err, &fe)
	if fe.Stage != StageContext {
		t.Errorf("Stage = %v, want %v", fe.Stage, StageContext)
	}
	if !loop.exited {
		t.Error("loop not exited")
	}
}

func TestAppSampleInitFailure(t *testing.T) {
	h := newHarness(t)
	loop := &fakeLoop{}
	cause := errors.New("shader broke")
	def := Definition{Name: "bad", New: func(*GraphicsContext) (Sample, error) { return nil, cause }}

	err := h.app(&scriptPlatform{loop: loop}, def).Run()
	if !errors.Is(err, ErrSampleInit) || !errors.Is(err, cause) {
		t.Fatalf("Run() error = %v, want ErrSampleInit wrapping cause", err)
	}
}

func TestAppAcquireFailureStopsLoop(t *testing.T) {
	h := newHarness(t)
	h.target.acquireErrs = []error{wgpu.ErrSurfaceLost, wgpu.ErrSurfaceLost}
	s := &testSample{}
	loop := &fakeLoop{}
	p := &scriptPlatform{loop: loop, events: []any{RedrawRequested{}, RedrawRequested{}}}
	def := Definition{Name: "lost", New: func(*GraphicsContext) (Sample, error) { return s, nil }}

	err := h.app(p, def).Run()
	if !errors.Is(err, surface.ErrAcquireFailed) {
		t.Fatalf("Run() error = %v, want ErrAcquireFailed", err)
	}
	if len(s.renders) != 0 {
		t.Errorf("renders = %d, want 0 after failed acquire", len(s.renders))
	}
}

func TestAppAcquireRecovers(t *testing.T) {
	h := newHarness(t)
	h.target.acquireErrs = []error{wgpu.ErrSurfaceOutdated}
	s := &testSample{}
	p := &scriptPlatform{loop: &fakeLoop{}, events: []any{RedrawRequested{}, CloseRequested{}}}
	def := Definition{Name: "outdated", New: func(*GraphicsContext) (Sample, error) { return s, nil }}

	if err := h.app(p, def).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(s.renders) != 1 {
		t.Errorf("renders = %d, want 1", len(s.renders))
	}
}

func TestAppRenderFailureDiscards(t *testing.T) {
	h := newHarness(t)
	cause := errors.New("draw failed")
	s := &testSample{renderErr: cause}
	p := &scriptPlatform{loop: &fakeLoop{}, events: []any{RedrawRequested{}, RedrawRequested{}}}
	def := Definition{Name: "render", New: func(*GraphicsContext) (Sample, error) { return s, nil }}

	err := h.app(p, def).Run()
	if !errors.Is(err, cause) {
		t.Fatalf("Run() error = %v, want %v", err, cause)
	}
	if len(h.target.frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(h.target.frames))
	}
	f := h.target.frames[0]
	if !f.discarded || f.presented {
		t.Errorf("frame discarded=%v presented=%v, want discarded only", f.discarded, f.presented)
	}
	if !s.closed {
		t.Error("sample not closed after fatal error")
	}
}

func TestAppPresentFailure(t *testing.T) {
	h := newHarness(t)
	h.target.presentErr = wgpu.ErrSurfaceLost
	p := &scriptPlatform{loop: &fakeLoop{}, events: []any{RedrawRequested{}}}
	def := Definition{Name: "present", New: func(*GraphicsContext) (Sample, error) { return &testSample{}, nil }}

	err := h.app(p, def).Run()
	var fe *FatalError
	if !errors.As(err, &fe) || fe.Stage != StagePresent {
		t.Fatalf("Run() error = %v, want present-stage FatalError", err)
	}
}

func TestAppPlatformError(t *testing.T) {
	h := newHarness(t)
	cause := errors.New("display gone")
	p := &scriptPlatform{loop: &fakeLoop{}, err: cause}
	def := Definition{Name: "plat", New: func(*GraphicsContext) (Sample, error) { return &testSample{}, nil }}

	err := h.app(p, def).Run()
	if !errors.Is(err, cause) || !IsFatal(err) {
		t.Fatalf("Run() error = %v, want fatal platform error", err)
	}
}

func TestAppRoutesInputToCamera(t *testing.T) {
	h := newHarness(t)
	s := &cameraSample{}
	s.cam = camera.New(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, camera.WithSensitivity(1))
	p := &scriptPlatform{loop: &fakeLoop{}, events: []any{
		MouseInput{Button: gpucontext.MouseButtonLeft, Pressed: true},
		MouseMotion{DX: 30},
		CursorEntered{},
		MouseMotion{DX: 15, DY: 5},
		CursorLeft{},
		MouseMotion{DX: 100},
		KeyInput{Key: gpucontext.KeyW, Pressed: true},
		h.advance(time.Second),
		RedrawRequested{},
		CloseRequested{},
	}}
	def := Definition{Name: "cam", New: func(*GraphicsContext) (Sample, error) { return s, nil }}

	if err := h.app(p, def).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if s.cam.Yaw() != 15 || s.cam.Pitch() != 5 {
		t.Errorf("yaw/pitch = %v/%v, want 15/5", s.cam.Yaw(), s.cam.Pitch())
	}
	if !s.cam.LookEnabled() {
		t.Error("look not enabled by left button")
	}
}

func TestAppSampleWithoutCamera(t *testing.T) {
	h := newHarness(t)
	p := &scriptPlatform{loop: &fakeLoop{}, events: []any{
		CursorEntered{},
		KeyInput{Key: gpucontext.KeyW, Pressed: true},
		MouseMotion{DX: 1},
		CloseRequested{},
	}}
	def := Definition{Name: "plain", New: func(*GraphicsContext) (Sample, error) { return &cameraSample{}, nil }}

	// cameraSample with a nil camera must not panic.
	if err := h.app(p, def).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestAppTitleOption(t *testing.T) {
	h := newHarness(t)
	def := Definition{Name: "x", Title: "From Def", New: func(*GraphicsContext) (Sample, error) { return &testSample{}, nil }}
	loop := &fakeLoop{}
	app := NewApp(&scriptPlatform{loop: loop}, def, WithTitle("Override"), withContextFactory(h.factory))
	app.Resumed(loop)
	if h.window.title != "Override" {
		t.Errorf("title = %q, want Override", h.window.title)
	}
}

func TestAppSettingsReachSample(t *testing.T) {
	h := newHarness(t)
	want := Settings{ClearColor: color.RGBA{B: 200, A: 255}, CameraSensitivity: 2, CameraMoveSpeed: 3}

	var got Settings
	def := Definition{Name: "x", New: func(ctx *GraphicsContext) (Sample, error) {
		got = ctx.Settings()
		return &testSample{}, nil
	}}
	loop := &fakeLoop{}
	app := NewApp(&scriptPlatform{loop: loop}, def, WithSettings(want), withContextFactory(h.factory))
	app.Resumed(loop)

	if got != want {
		t.Errorf("ctx.Settings() = %+v, want %+v", got, want)
	}
}
