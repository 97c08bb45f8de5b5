package samples

import (
	"time"

	"github.com/gogpu/gputypes"
)

// Window size used when neither an explicit size nor the primary monitor
// is known.
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
)

// AppOption configures an App during creation.
//
// Example:
//
//	app := samples.NewApp(platform, def,
//	    samples.WithWindowSize(1024, 768),
//	    samples.WithPresentModes(gputypes.PresentModeMailbox),
//	)
type AppOption func(*appOptions)

// contextFactory builds the GraphicsContext; replaced in tests.
type contextFactory func(loop EventLoop, title string, req Requirements, cfg contextConfig) (*GraphicsContext, error)

// appOptions holds optional configuration for App creation.
type appOptions struct {
	title        string
	width        int
	height       int
	presentModes []gputypes.PresentMode
	frameLatency uint32
	settings     Settings
	now          func() time.Time
	newContext   contextFactory
}

// defaultAppOptions returns the default app options.
func defaultAppOptions() appOptions {
	return appOptions{
		settings:   DefaultSettings(),
		now:        time.Now,
		newContext: NewGraphicsContext,
	}
}

// WithTitle overrides the window title from the sample definition.
func WithTitle(title string) AppOption {
	return func(o *appOptions) {
		o.title = title
	}
}

// WithWindowSize sets an explicit window size. Without it the window is
// sized from the primary monitor.
func WithWindowSize(width, height int) AppOption {
	return func(o *appOptions) {
		o.width = width
		o.height = height
	}
}

// WithPresentModes sets the present mode preference order. A sample's own
// Requirements.PresentModes take precedence.
func WithPresentModes(modes ...gputypes.PresentMode) AppOption {
	return func(o *appOptions) {
		o.presentModes = modes
	}
}

// WithFrameLatency sets the desired maximum frame latency hint.
func WithFrameLatency(n uint32) AppOption {
	return func(o *appOptions) {
		o.frameLatency = n
	}
}

// WithSettings sets the preferences passed to the sample through
// GraphicsContext.Settings. Non-positive camera values keep their defaults.
func WithSettings(s Settings) AppOption {
	return func(o *appOptions) {
		o.settings = s.withDefaults()
	}
}

// withClock sets the time source for frame deltas.
func withClock(now func() time.Time) AppOption {
	return func(o *appOptions) {
		o.now = now
	}
}

// withContextFactory replaces GraphicsContext creation.
func withContextFactory(f contextFactory) AppOption {
	return func(o *appOptions) {
		o.newContext = f
	}
}
