package samples

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// Requirements lists what a sample needs from the GPU device.
// The zero value asks for no optional features and default limits.
type Requirements struct {
	// Features that must be enabled on the device.
	Features gputypes.Features

	// Limits to request. Nil means gputypes.DefaultLimits().
	Limits *gputypes.Limits

	// PresentModes overrides the present mode preference order.
	PresentModes []gputypes.PresentMode
}

// DeviceLimits returns the limits to request from the adapter.
func (r Requirements) DeviceLimits() gputypes.Limits {
	if r.Limits == nil {
		return gputypes.DefaultLimits()
	}
	return *r.Limits
}

// Check returns ErrUnsupportedFeatures, naming the missing features, if
// supported does not contain every required feature.
func (r Requirements) Check(supported gputypes.Features) error {
	missing := r.Features &^ supported
	if missing.IsEmpty() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFeatures, featureNames(missing))
}

func featureNames(f gputypes.Features) string {
	var names []string
	for bit := range 64 {
		feat := gputypes.Feature(uint64(1) << bit)
		if f.Contains(feat) {
			names = append(names, feat.String())
		}
	}
	return strings.Join(names, ", ")
}
