package samples

import (
	"errors"
	"fmt"
	"log/slog"
)

// Common errors returned while setting up or running a sample.
var (
	// ErrWindowCreation is returned when the platform cannot open a window.
	ErrWindowCreation = errors.New("samples: window creation failed")

	// ErrSurfaceCreation is returned when no GPU surface can be created
	// for the window.
	ErrSurfaceCreation = errors.New("samples: surface creation failed")

	// ErrNoAdapter is returned when no GPU adapter is compatible with the
	// window surface.
	ErrNoAdapter = errors.New("samples: no compatible GPU adapter")

	// ErrUnsupportedFeatures is returned when the adapter lacks features a
	// sample requires.
	ErrUnsupportedFeatures = errors.New("samples: required features not supported")

	// ErrDeviceRequest is returned when the logical device cannot be created.
	ErrDeviceRequest = errors.New("samples: device request failed")

	// ErrSampleInit is returned when a sample factory fails.
	ErrSampleInit = errors.New("samples: sample initialization failed")

	// ErrUnknownSample is returned when a sample name is not registered.
	ErrUnknownSample = errors.New("samples: unknown sample")

	// ErrUnsupportedPlatform is returned by platforms that cannot provide
	// native surface handles on the current OS.
	ErrUnsupportedPlatform = errors.New("samples: unsupported platform")
)

// Stage names the lifecycle step a fatal error happened in.
type Stage string

const (
	StageContext  Stage = "context"
	StageSample   Stage = "sample"
	StageAcquire  Stage = "acquire"
	StageRender   Stage = "render"
	StagePresent  Stage = "present"
	StagePlatform Stage = "platform"
)

// FatalError is an error that stopped the event loop.
type FatalError struct {
	Stage Stage
	Err   error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("samples: fatal %s error: %v", e.Stage, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// LogErrorChain logs err and every error it wraps, outermost first,
// one record per link at error level.
func LogErrorChain(l *slog.Logger, msg string, err error) {
	if err == nil {
		return
	}
	l.Error(msg, "err", err)
	depth := 0
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		depth++
		l.Error("caused by", "depth", depth, "err", cause)
	}
}
