package samples

import "github.com/gogpu/gpucontext"

// WindowEvent is an event scoped to the sample window.
//
// The concrete types are Resized, RedrawRequested, KeyInput, MouseInput,
// CursorEntered, CursorLeft and CloseRequested.
type WindowEvent interface {
	windowEvent()
}

// DeviceEvent is an event reported by an input device regardless of which
// window, if any, has focus. The only concrete type is MouseMotion.
type DeviceEvent interface {
	deviceEvent()
}

// Resized reports a new drawable size in pixels. Either dimension may be
// zero while the window is minimized.
type Resized struct {
	Width, Height int
}

// RedrawRequested asks the sample to render a frame.
type RedrawRequested struct{}

// KeyInput reports a key press or release. Repeats are reported as presses.
type KeyInput struct {
	Key       gpucontext.Key
	Modifiers gpucontext.Modifiers
	Pressed   bool
}

// MouseInput reports a mouse button press or release.
type MouseInput struct {
	Button  gpucontext.MouseButton
	Pressed bool
}

// CursorEntered reports the pointer moving into the window.
type CursorEntered struct{}

// CursorLeft reports the pointer leaving the window.
type CursorLeft struct{}

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

// MouseMotion is a relative pointer movement in device units.
type MouseMotion struct {
	DX, DY float64
}

func (Resized) windowEvent()         {}
func (RedrawRequested) windowEvent() {}
func (KeyInput) windowEvent()        {}
func (MouseInput) windowEvent()      {}
func (CursorEntered) windowEvent()   {}
func (CursorLeft) windowEvent()      {}
func (CloseRequested) windowEvent()  {}

func (MouseMotion) deviceEvent() {}
