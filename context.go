package samples

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/samples/surface"
	"github.com/gogpu/wgpu"
)

// GraphicsContext owns the window and the GPU objects a sample renders with.
//
// It is created once, on the first Resumed event, and released after the
// event loop exits. GraphicsContext is NOT safe for concurrent use.
type GraphicsContext struct {
	window     Window
	monitor    Monitor
	hasMonitor bool
	settings   Settings

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	surface  *wgpu.Surface
	manager  *surface.Manager
	info     wgpu.AdapterInfo
}

// contextConfig carries App settings into NewGraphicsContext.
type contextConfig struct {
	width, height int
	presentModes  []gputypes.PresentMode
	frameLatency  uint32
	settings      Settings
}

// NewGraphicsContext opens the sample window and initializes the GPU:
// instance, surface, a high-performance adapter compatible with the
// surface, the device and queue, and the surface manager. It requests a
// first redraw on success.
func NewGraphicsContext(loop EventLoop, title string, req Requirements, cfg contextConfig) (*GraphicsContext, error) {
	log := Logger()
	gc := &GraphicsContext{settings: cfg.settings}
	gc.monitor, gc.hasMonitor = loop.PrimaryMonitor()

	win, err := loop.CreateWindow(PlaceWindow(title, gc.monitor, gc.hasMonitor, cfg.width, cfg.height))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}
	gc.window = win

	gc.instance, err = wgpu.CreateInstance(&wgpu.InstanceDescriptor{Backends: wgpu.BackendsPrimary})
	if err != nil {
		return nil, fmt.Errorf("samples: create instance: %w", err)
	}

	display, handle, err := win.SurfaceHandles()
	if err != nil {
		gc.Release()
		return nil, fmt.Errorf("%w: %w", ErrSurfaceCreation, err)
	}
	gc.surface, err = gc.instance.CreateSurface(display, handle)
	if err != nil {
		gc.Release()
		return nil, fmt.Errorf("%w: %w", ErrSurfaceCreation, err)
	}

	gc.adapter, err = gc.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
		CompatibleSurface: gc.surface,
	})
	if err != nil {
		gc.Release()
		return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	gc.info = gc.adapter.Info()
	log.Info("samples: adapter selected",
		"name", gc.info.Name,
		"backend", gc.info.Backend,
		"type", adapterType(gc.info.DeviceType))

	if err := req.Check(gc.adapter.Features()); err != nil {
		gc.Release()
		return nil, err
	}

	gc.device, err = gc.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:            title,
		RequiredFeatures: req.Features,
		RequiredLimits:   req.DeviceLimits(),
	})
	if err != nil {
		gc.Release()
		return nil, fmt.Errorf("%w: %w", ErrDeviceRequest, err)
	}
	gc.queue = gc.device.Queue()

	modes := req.PresentModes
	if len(modes) == 0 {
		modes = cfg.presentModes
	}
	opts := []surface.Option{
		surface.WithPresentModes(modes...),
		surface.WithLogger(log),
	}
	if cfg.frameLatency > 0 {
		opts = append(opts, surface.WithFrameLatency(cfg.frameLatency))
	}
	gc.manager, err = surface.NewManager(
		surface.NewWGPUTarget(gc.surface, gc.device),
		win,
		surface.CapabilitiesOf(gc.adapter.GetSurfaceCapabilities(gc.surface)),
		opts...,
	)
	if err != nil {
		gc.Release()
		return nil, fmt.Errorf("%w: %w", ErrSurfaceCreation, err)
	}

	win.RequestRedraw()
	return gc, nil
}

// Submit submits command buffers and blocks until the GPU has finished
// them, so the frame can be presented right after.
func (gc *GraphicsContext) Submit(cmds ...*wgpu.CommandBuffer) error {
	if _, err := gc.queue.Submit(cmds...); err != nil {
		return fmt.Errorf("samples: submit: %w", err)
	}
	gc.device.Poll(wgpu.PollWait)
	return nil
}

// Aspect returns the window's width / height ratio. A collapsed dimension
// counts as 1 pixel.
func (gc *GraphicsContext) Aspect() float32 {
	w, h := gc.window.FramebufferSize()
	return float32(max(w, 1)) / float32(max(h, 1))
}

func (gc *GraphicsContext) Window() Window                 { return gc.window }
func (gc *GraphicsContext) Device() *wgpu.Device           { return gc.device }
func (gc *GraphicsContext) Queue() *wgpu.Queue             { return gc.queue }
func (gc *GraphicsContext) Adapter() *wgpu.Adapter         { return gc.adapter }
func (gc *GraphicsContext) AdapterInfo() wgpu.AdapterInfo  { return gc.info }
func (gc *GraphicsContext) Surface() *surface.Manager      { return gc.manager }
func (gc *GraphicsContext) Format() gputypes.TextureFormat { return gc.manager.Format() }
func (gc *GraphicsContext) Monitor() (Monitor, bool)       { return gc.monitor, gc.hasMonitor }
func (gc *GraphicsContext) Settings() Settings             { return gc.settings }

// Provider exposes the device through the gpucontext.DeviceProvider
// contract, for libraries that render into a gogpu device.
func (gc *GraphicsContext) Provider() gpucontext.DeviceProvider {
	return deviceProvider{gc}
}

// Release destroys the GPU objects in reverse creation order. The window
// is owned by the platform and closes when its loop exits.
func (gc *GraphicsContext) Release() {
	if gc.device != nil {
		gc.device.Poll(wgpu.PollWait)
	}
	if gc.surface != nil {
		gc.surface.Release()
		gc.surface = nil
	}
	if gc.device != nil {
		gc.device.Release()
		gc.device = nil
		gc.queue = nil
	}
	if gc.adapter != nil {
		gc.adapter.Release()
		gc.adapter = nil
	}
	if gc.instance != nil {
		gc.instance.Release()
		gc.instance = nil
	}
}

type deviceProvider struct{ gc *GraphicsContext }

func (p deviceProvider) Device() gpucontext.Device   { return p.gc.device }
func (p deviceProvider) Queue() gpucontext.Queue     { return p.gc.queue }
func (p deviceProvider) Adapter() gpucontext.Adapter { return p.gc.adapter }

func (p deviceProvider) SurfaceFormat() gputypes.TextureFormat {
	if p.gc.manager == nil {
		return gputypes.TextureFormatUndefined
	}
	return p.gc.manager.Format()
}

func (p deviceProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{
		Name: p.gc.info.Name,
		Type: adapterType(p.gc.info.DeviceType),
	}
}

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}
