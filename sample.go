package samples

import (
	"time"

	"github.com/gogpu/samples/camera"
	"github.com/gogpu/wgpu"
)

// Sample is a pluggable demo rendered by App.
//
// Render is called once per redraw with a view of the acquired surface
// texture and the time since the previous redraw. It records and submits
// its own command buffers, normally through GraphicsContext.Submit. The
// view is only valid for the duration of the call.
//
// A Sample that also implements io.Closer is closed before the
// GraphicsContext is released.
type Sample interface {
	Render(ctx *GraphicsContext, view *wgpu.TextureView, dt time.Duration) error
}

// CameraController is implemented by samples that want keyboard, mouse
// button and mouse motion input routed to a camera.
type CameraController interface {
	Camera() *camera.Camera
}

// Factory creates a sample once the GraphicsContext exists.
type Factory func(ctx *GraphicsContext) (Sample, error)

// Definition describes a registered sample.
type Definition struct {
	// Name is the unique identifier used on the command line.
	Name string

	// Title is the window title. Empty means a title derived from Name.
	Title string

	// Description is a one-line summary shown by listings.
	Description string

	Requirements Requirements

	// Shaders maps a file name to the WGSL source of each shader the sample
	// builds. Tools use it to check shaders without a GPU.
	Shaders map[string]string

	New Factory
}
