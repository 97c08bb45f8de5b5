// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// Target is a surface that can be configured and acquired from.
// NewWGPUTarget adapts a *wgpu.Surface.
type Target interface {
	// Configure applies cfg. It is called with a non-zero extent only.
	Configure(cfg *Config) error

	// Acquire returns the next frame and whether the surface reported
	// itself as suboptimal for the current window.
	Acquire() (Frame, bool, error)
}

// Frame is an acquired surface texture. Exactly one of Present or Discard
// must be called.
type Frame interface {
	CreateView(desc *wgpu.TextureViewDescriptor) (*wgpu.TextureView, error)
	Present() error
	Discard()
}

// SizeSource reports the current drawable size of a window in pixels.
type SizeSource interface {
	FramebufferSize() (width, height int)
}

// State is the configuration state of a Manager.
type State int

const (
	StateConfigured State = iota
	StateNeedsReconfigure
)

func (s State) String() string {
	if s == StateNeedsReconfigure {
		return "NeedsReconfigure"
	}
	return "Configured"
}

// Option configures a Manager during creation.
type Option func(*managerOptions)

type managerOptions struct {
	presentModes []gputypes.PresentMode
	frameLatency uint32
	usage        gputypes.TextureUsage
	logger       *slog.Logger
}

func defaultManagerOptions() managerOptions {
	return managerOptions{
		frameLatency: DefaultFrameLatency,
		usage:        gputypes.TextureUsageRenderAttachment,
		logger:       slog.New(slog.DiscardHandler),
	}
}

// WithPresentModes sets the present mode preference order.
func WithPresentModes(modes ...gputypes.PresentMode) Option {
	return func(o *managerOptions) {
		o.presentModes = modes
	}
}

// WithFrameLatency sets the desired maximum frame latency hint.
func WithFrameLatency(n uint32) Option {
	return func(o *managerOptions) {
		o.frameLatency = n
	}
}

// WithUsage sets the surface texture usage. RenderAttachment is always
// included.
func WithUsage(u gputypes.TextureUsage) Option {
	return func(o *managerOptions) {
		o.usage = u | gputypes.TextureUsageRenderAttachment
	}
}

// WithLogger sets the logger used for configuration and recovery messages.
func WithLogger(l *slog.Logger) Option {
	return func(o *managerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Manager owns the surface configuration and frame acquisition.
//
// Manager is NOT safe for concurrent use. All calls must come from the
// event loop thread.
type Manager struct {
	target     Target
	window     SizeSource
	config     Config
	suboptimal bool
	log        *slog.Logger
}

// NewManager creates a Manager and configures the surface with the current
// window size.
//
// The surface format is the first entry of caps.Formats and stays fixed for
// the lifetime of the Manager.
func NewManager(target Target, window SizeSource, caps Capabilities, opts ...Option) (*Manager, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	if len(caps.Formats) == 0 {
		return nil, ErrNoFormats
	}

	o := defaultManagerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	format := caps.Formats[0]
	m := &Manager{
		target: target,
		window: window,
		log:    o.logger,
		config: Config{
			Usage:                      o.usage,
			Format:                     format,
			PresentMode:                ChoosePresentMode(o.presentModes, caps.PresentModes),
			AlphaMode:                  gputypes.CompositeAlphaModeAuto,
			DesiredMaximumFrameLatency: o.frameLatency,
			ViewFormats:                []gputypes.TextureFormat{format},
		},
	}

	w, h := m.windowSize()
	if err := m.Configure(w, h); err != nil {
		return nil, err
	}

	m.log.Info("surface: created",
		"format", format,
		"presentMode", m.config.PresentMode)
	return m, nil
}

// Configure stores the new extent, clamped to at least 1x1, and applies the
// configuration. Configuring twice with the same size is harmless.
func (m *Manager) Configure(width, height int) error {
	m.config.Width, m.config.Height = clampSize(width, height)

	cfg := m.config
	if err := m.target.Configure(&cfg); err != nil {
		m.suboptimal = true
		return fmt.Errorf("surface: configure %dx%d: %w", cfg.Width, cfg.Height, err)
	}
	m.suboptimal = false

	m.log.Debug("surface: configured",
		"width", cfg.Width,
		"height", cfg.Height)
	return nil
}

// Acquire returns the next frame and a 2D view of it.
//
// If the surface needs reconfiguring, it is reconfigured with the current
// window size first. Failed acquisitions are retried once, after
// reconfiguring for recoverable kinds. Any error returned is an
// *AcquireError.
func (m *Manager) Acquire() (Frame, *wgpu.TextureView, error) {
	if m.suboptimal {
		if err := m.reconfigure(); err != nil {
			return nil, nil, &AcquireError{Kind: KindOther, Err: err}
		}
	}

	frame, suboptimal, err := m.target.Acquire()
	if err != nil {
		kind := Classify(err)
		if kind == KindFatal {
			return nil, nil, &AcquireError{Kind: kind, Err: err}
		}

		m.log.Warn("surface: acquire failed, retrying",
			"kind", kind,
			"err", err)
		if kind.Recoverable() {
			if cerr := m.reconfigure(); cerr != nil {
				return nil, nil, &AcquireError{Kind: kind, Err: cerr}
			}
		}

		frame, suboptimal, err = m.target.Acquire()
		if err != nil {
			return nil, nil, &AcquireError{Kind: Classify(err), Retried: true, Err: err}
		}
	}

	if suboptimal {
		m.log.Debug("surface: suboptimal, reconfiguring next frame")
	}
	m.suboptimal = suboptimal

	view, err := frame.CreateView(&wgpu.TextureViewDescriptor{
		Label:           "surface view",
		Format:          m.config.ViewFormats[0],
		Dimension:       gputypes.TextureViewDimension2D,
		Aspect:          gputypes.TextureAspectAll,
		MipLevelCount:   1,
		ArrayLayerCount: 1,
	})
	if err != nil {
		frame.Discard()
		return nil, nil, &AcquireError{Kind: KindOther, Err: fmt.Errorf("create view: %w", err)}
	}
	return frame, view, nil
}

func (m *Manager) reconfigure() error {
	w, h := m.windowSize()
	return m.Configure(w, h)
}

func (m *Manager) windowSize() (int, int) {
	if m.window == nil {
		return int(m.config.Width), int(m.config.Height)
	}
	return m.window.FramebufferSize()
}

// MarkOutdated forces a reconfigure before the next acquisition.
func (m *Manager) MarkOutdated() { m.suboptimal = true }

// State returns the current configuration state.
func (m *Manager) State() State {
	if m.suboptimal {
		return StateNeedsReconfigure
	}
	return StateConfigured
}

// Config returns a copy of the current configuration.
func (m *Manager) Config() Config {
	cfg := m.config
	cfg.ViewFormats = append([]gputypes.TextureFormat(nil), m.config.ViewFormats...)
	return cfg
}

// Format returns the surface texture format.
func (m *Manager) Format() gputypes.TextureFormat { return m.config.Format }

// Size returns the configured extent.
func (m *Manager) Size() (uint32, uint32) { return m.config.Width, m.config.Height }

// Suboptimal reports whether the last acquisition flagged the surface as
// suboptimal.
func (m *Manager) Suboptimal() bool { return m.suboptimal }
