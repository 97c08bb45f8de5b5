// Package samples is a small framework for interactive GPU demos built on
// gogpu/wgpu.
//
// The framework owns the window, the presentation surface and the frame
// loop. A demo only implements [Sample]: it is created once the GPU is
// ready and asked to render one frame per redraw.
//
// # Writing a sample
//
//	type triangle struct {
//	    pipeline *wgpu.RenderPipeline
//	}
//
//	func (t *triangle) Render(ctx *samples.GraphicsContext, view *wgpu.TextureView, dt time.Duration) error {
//	    enc, err := ctx.Device().CreateCommandEncoder(nil)
//	    ...
//	    return ctx.Submit(cmd)
//	}
//
//	func init() {
//	    samples.Register(samples.Definition{
//	        Name: "triangle",
//	        New:  func(ctx *samples.GraphicsContext) (samples.Sample, error) { ... },
//	    })
//	}
//
// # Running a sample
//
// An [App] drives one sample on a [Platform]:
//
//	p, err := glfw.New()
//	...
//	def, err := samples.Lookup("triangle")
//	...
//	err = samples.NewApp(p, def).Run()
//
// # Frame loop
//
// On every redraw the App measures the frame time, acquires the next surface
// texture through the surface manager, calls Sample.Render, presents the
// frame and requests the next redraw. Resizes reconfigure the surface. A
// failure the surface manager cannot recover from stops the loop; Run
// returns it as a *FatalError.
//
// # Input
//
// Samples that implement [CameraController] receive keyboard, mouse button
// and mouse motion input on their camera. Raw mouse motion is only forwarded
// while the pointer is inside the window.
//
// # Logging
//
// Nothing is logged by default. Use [SetLogger] to enable logging.
package samples
