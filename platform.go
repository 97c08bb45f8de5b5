package samples

// Platform runs the OS event loop. Run blocks until the loop exits and
// must be called from the main OS thread.
type Platform interface {
	Run(h Handler) error
}

// Handler receives events from a Platform. All methods are called on the
// event loop thread, one at a time.
type Handler interface {
	// Resumed is called when the application may create windows. It can be
	// called more than once on platforms that suspend.
	Resumed(loop EventLoop)
	WindowEvent(loop EventLoop, ev WindowEvent)
	DeviceEvent(loop EventLoop, ev DeviceEvent)
}

// EventLoop is the handle passed to Handler methods.
type EventLoop interface {
	CreateWindow(cfg WindowConfig) (Window, error)

	// PrimaryMonitor returns the primary monitor, or false if the platform
	// cannot tell.
	PrimaryMonitor() (Monitor, bool)

	// Exit stops the loop after the current event has been handled.
	Exit()
}

// Window is the single OS window a sample renders into.
type Window interface {
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)

	// SurfaceHandles returns the native display and window handles used to
	// create a GPU surface.
	SurfaceHandles() (display, window uintptr, err error)

	// RequestRedraw schedules a RedrawRequested event.
	RequestRedraw()

	SetTitle(title string)
}

// Monitor describes a display's current video mode.
type Monitor struct {
	Width, Height int
}

// WindowConfig describes a window to create.
type WindowConfig struct {
	Title         string
	Width, Height int

	// X and Y are honored only when Positioned is set.
	X, Y       int
	Positioned bool

	MinWidth, MinHeight int
}

// PlaceWindow returns the configuration of the sample window.
//
// A positive width and height are used as given. Otherwise the window is
// half the size of the monitor, or DefaultWindowWidth x DefaultWindowHeight
// when the monitor is unknown. On a known monitor the window is centered
// and then shifted up by a tenth of its height.
func PlaceWindow(title string, m Monitor, ok bool, width, height int) WindowConfig {
	cfg := WindowConfig{
		Title:     title,
		MinWidth:  1,
		MinHeight: 1,
	}
	known := ok && m.Width > 0 && m.Height > 0

	switch {
	case width > 0 && height > 0:
		cfg.Width, cfg.Height = width, height
	case known:
		cfg.Width = max(m.Width/2, 1)
		cfg.Height = max(m.Height/2, 1)
	default:
		cfg.Width, cfg.Height = DefaultWindowWidth, DefaultWindowHeight
	}

	if known {
		cfg.X = max((m.Width-cfg.Width)/2, 0)
		cfg.Y = max((m.Height-cfg.Height)/2-cfg.Height/10, 0)
		cfg.Positioned = true
	}
	return cfg
}
