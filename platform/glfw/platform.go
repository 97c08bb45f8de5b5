// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfw

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/samples"
)

func init() {
	runtime.LockOSThread()
}

// ErrNoWindow is returned by Run when the handler neither created a window
// nor asked the loop to exit on Resumed.
var ErrNoWindow = errors.New("glfw: no window created")

// errMultipleWindows is returned by CreateWindow after the first call.
var errMultipleWindows = errors.New("glfw: only one window is supported")

// Platform runs the GLFW event loop. It implements samples.Platform and
// samples.EventLoop.
type Platform struct {
	handler samples.Handler
	window  *window
	log     *slog.Logger
	exit    bool
}

// New initializes GLFW.
func New() (*Platform, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw: init: %w", err)
	}
	return &Platform{log: samples.Logger()}, nil
}

// Run delivers Resumed and then pumps events until Exit is called. It
// blocks while no redraw is pending. GLFW is terminated before Run returns.
func (p *Platform) Run(h samples.Handler) error {
	defer glfw.Terminate()
	defer p.destroyWindow()

	p.handler = h
	h.Resumed(p)
	if p.exit {
		return nil
	}
	if p.window == nil {
		return ErrNoWindow
	}

	for !p.exit {
		if p.window.redraw {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}
		if p.exit {
			break
		}
		if p.window.redraw {
			p.window.redraw = false
			h.WindowEvent(p, samples.RedrawRequested{})
		}
	}
	return nil
}

// CreateWindow creates the sample window.
func (p *Platform) CreateWindow(cfg samples.WindowConfig) (samples.Window, error) {
	if p.window != nil {
		return nil, errMultipleWindows
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Visible, glfw.False)

	gw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", samples.ErrWindowCreation, err)
	}
	if cfg.MinWidth > 0 || cfg.MinHeight > 0 {
		gw.SetSizeLimits(max(cfg.MinWidth, 1), max(cfg.MinHeight, 1), glfw.DontCare, glfw.DontCare)
	}
	if cfg.Positioned {
		gw.SetPos(cfg.X, cfg.Y)
	}
	if glfw.RawMouseMotionSupported() {
		gw.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}

	w := &window{w: gw}
	p.window = w
	p.installCallbacks(w)
	gw.Show()

	p.log.Debug("glfw: window created", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return w, nil
}

// PrimaryMonitor returns the current video mode of the primary monitor.
func (p *Platform) PrimaryMonitor() (samples.Monitor, bool) {
	m := glfw.GetPrimaryMonitor()
	if m == nil {
		return samples.Monitor{}, false
	}
	mode := m.GetVideoMode()
	if mode == nil {
		return samples.Monitor{}, false
	}
	return samples.Monitor{Width: mode.Width, Height: mode.Height}, true
}

// Exit stops the loop after the current event.
func (p *Platform) Exit() {
	p.exit = true
	if p.window != nil {
		p.window.w.SetShouldClose(true)
	}
}

func (p *Platform) destroyWindow() {
	if p.window != nil {
		p.window.w.Destroy()
		p.window = nil
	}
}

func (p *Platform) installCallbacks(w *window) {
	gw := w.w

	gw.SetCloseCallback(func(*glfw.Window) {
		// The handler decides whether the loop ends.
		gw.SetShouldClose(false)
		p.handler.WindowEvent(p, samples.CloseRequested{})
	})
	gw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		p.handler.WindowEvent(p, samples.Resized{Width: width, Height: height})
	})
	gw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		k := mapKey(key)
		if k == gpucontext.KeyUnknown {
			return
		}
		p.handler.WindowEvent(p, samples.KeyInput{
			Key:       k,
			Modifiers: mapModifiers(mods),
			Pressed:   action != glfw.Release,
		})
	})
	gw.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := mapButton(button)
		if !ok {
			return
		}
		p.handler.WindowEvent(p, samples.MouseInput{Button: b, Pressed: action == glfw.Press})
	})
	gw.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		w.tracker.reset()
		if entered {
			p.handler.WindowEvent(p, samples.CursorEntered{})
		} else {
			p.handler.WindowEvent(p, samples.CursorLeft{})
		}
	})
	gw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if dx, dy, ok := w.tracker.move(x, y); ok {
			p.handler.DeviceEvent(p, samples.MouseMotion{DX: dx, DY: dy})
		}
	})
}
