package samples

import "github.com/gogpu/gpucontext"

// InputTarget consumes routed input. *camera.Camera implements it.
type InputTarget interface {
	ProcessKeyboard(key gpucontext.Key, pressed bool)
	ProcessMouseButton(button gpucontext.MouseButton, pressed bool)
	ProcessMouseMotion(dx, dy float64)
}

// InputRouter forwards input events to an InputTarget.
//
// Key and button events are forwarded as they arrive. Device mouse motion
// is reported even while the pointer is over another application, so it is
// forwarded only while the pointer is inside the window.
type InputRouter struct {
	pointerInside bool
}

// RouteWindowEvent updates the pointer gate and forwards key and button
// events. It reports whether ev was an input event. target may be nil.
func (r *InputRouter) RouteWindowEvent(ev WindowEvent, target InputTarget) bool {
	switch ev := ev.(type) {
	case CursorEntered:
		r.pointerInside = true
	case CursorLeft:
		r.pointerInside = false
	case KeyInput:
		if target != nil {
			target.ProcessKeyboard(ev.Key, ev.Pressed)
		}
	case MouseInput:
		// Not gated on pointerInside: a release outside the window must
		// still end mouse look.
		if target != nil {
			target.ProcessMouseButton(ev.Button, ev.Pressed)
		}
	default:
		return false
	}
	return true
}

// RouteDeviceEvent forwards mouse motion while the pointer is inside the
// window. It reports whether the event was forwarded.
func (r *InputRouter) RouteDeviceEvent(ev DeviceEvent, target InputTarget) bool {
	m, ok := ev.(MouseMotion)
	if !ok || !r.pointerInside || target == nil {
		return false
	}
	target.ProcessMouseMotion(m.DX, m.DY)
	return true
}

// PointerInside reports whether the pointer is inside the window.
func (r *InputRouter) PointerInside() bool { return r.pointerInside }
