package samples

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// App drives a single sample: it creates the GraphicsContext and the sample
// on the first Resumed event, renders on every RedrawRequested, keeps the
// surface in step with the window and routes input to the sample's camera.
//
// App implements Handler and is driven by a Platform through Run.
type App struct {
	platform Platform
	def      Definition
	opts     appOptions
	log      *slog.Logger

	ctx    *GraphicsContext
	sample Sample
	clock  *FrameClock
	router InputRouter

	err error
}

// NewApp returns an App that runs def on platform.
func NewApp(platform Platform, def Definition, opts ...AppOption) *App {
	o := defaultAppOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.title == "" {
		o.title = def.Title
	}
	if o.title == "" {
		o.title = DefaultTitle(def.Name)
	}
	return &App{
		platform: platform,
		def:      def,
		opts:     o,
		log:      Logger(),
	}
}

// Run runs the event loop until the window is closed or a fatal error
// occurs, then closes the sample and releases the GraphicsContext.
//
// Run returns nil on a normal close and a *FatalError otherwise.
func (a *App) Run() error {
	perr := a.platform.Run(a)
	a.shutdown()

	if a.err != nil {
		return a.err
	}
	if perr != nil {
		return &FatalError{Stage: StagePlatform, Err: perr}
	}
	return nil
}

// Resumed creates the GraphicsContext and the sample the first time it is
// called. Later calls are ignored.
func (a *App) Resumed(loop EventLoop) {
	if a.ctx != nil || a.err != nil {
		return
	}

	ctx, err := a.opts.newContext(loop, a.opts.title, a.def.Requirements, contextConfig{
		width:        a.opts.width,
		height:       a.opts.height,
		presentModes: a.opts.presentModes,
		frameLatency: a.opts.frameLatency,
		settings:     a.opts.settings,
	})
	if err != nil {
		a.fail(loop, StageContext, err)
		return
	}
	a.ctx = ctx

	s, err := a.def.New(ctx)
	if err != nil {
		a.fail(loop, StageSample, fmt.Errorf("%w: %s: %w", ErrSampleInit, a.def.Name, err))
		return
	}
	a.sample = s
	a.clock = NewFrameClock(a.opts.now())

	a.log.Info("samples: started", "sample", a.def.Name)
}

// WindowEvent handles an event for the sample window.
func (a *App) WindowEvent(loop EventLoop, ev WindowEvent) {
	if _, ok := ev.(CloseRequested); ok {
		a.log.Debug("samples: close requested")
		loop.Exit()
		return
	}
	if a.sample == nil || a.err != nil {
		return
	}

	switch ev := ev.(type) {
	case Resized:
		// A failed configure leaves the surface marked for reconfiguring;
		// the next acquisition retries and fails the loop if it still can't.
		if err := a.ctx.manager.Configure(ev.Width, ev.Height); err != nil {
			a.log.Warn("samples: resize failed", "err", err)
		}
		a.ctx.window.RequestRedraw()
	case RedrawRequested:
		a.redraw(loop)
	default:
		a.router.RouteWindowEvent(ev, a.inputTarget())
	}
}

// DeviceEvent handles raw device input.
func (a *App) DeviceEvent(_ EventLoop, ev DeviceEvent) {
	if a.sample == nil || a.err != nil {
		return
	}
	a.router.RouteDeviceEvent(ev, a.inputTarget())
}

func (a *App) redraw(loop EventLoop) {
	dt := a.clock.Tick(a.opts.now())

	frame, view, err := a.ctx.manager.Acquire()
	if err != nil {
		a.fail(loop, StageAcquire, err)
		return
	}
	defer view.Release()

	if err := a.sample.Render(a.ctx, view, dt); err != nil {
		frame.Discard()
		a.fail(loop, StageRender, err)
		return
	}
	if err := frame.Present(); err != nil {
		a.fail(loop, StagePresent, err)
		return
	}
	a.ctx.window.RequestRedraw()
}

func (a *App) inputTarget() InputTarget {
	cc, ok := a.sample.(CameraController)
	if !ok {
		return nil
	}
	if cam := cc.Camera(); cam != nil {
		return cam
	}
	return nil
}

// fail records the first fatal error, logs its chain and stops the loop.
func (a *App) fail(loop EventLoop, stage Stage, err error) {
	if a.err == nil {
		a.err = &FatalError{Stage: stage, Err: err}
		LogErrorChain(a.log, "samples: fatal error", a.err)
	}
	loop.Exit()
}

func (a *App) shutdown() {
	if c, ok := a.sample.(io.Closer); ok {
		if err := c.Close(); err != nil {
			a.log.Warn("samples: close sample", "err", err)
		}
	}
	a.sample = nil
	if a.ctx != nil {
		a.ctx.Release()
		a.ctx = nil
	}
}

// Err returns the fatal error recorded so far, if any.
func (a *App) Err() error { return a.err }

// IsFatal reports whether err stopped an App.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
