// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/wgpu"
)

// Common errors returned by the surface package.
var (
	// ErrAcquireFailed matches every unrecoverable acquisition failure.
	ErrAcquireFailed = errors.New("surface: acquire failed")

	// ErrNoFormats is returned when the surface reports no supported formats.
	ErrNoFormats = errors.New("surface: no supported formats")

	// ErrNilTarget is returned when a Manager is created without a target.
	ErrNilTarget = errors.New("surface: nil target")
)

// FailureKind classifies an acquisition failure.
type FailureKind int

const (
	// KindOther is an unrecognized failure. It is treated like KindOutdated.
	KindOther FailureKind = iota
	// KindTimeout means no texture became available in time.
	KindTimeout
	// KindOutdated means the surface no longer matches the window.
	KindOutdated
	// KindLost means the surface must be recreated or reconfigured.
	KindLost
	// KindOutOfMemory means the swapchain could not be allocated.
	KindOutOfMemory
	// KindFatal means the device or surface is gone for good.
	KindFatal
)

// String returns the failure kind name.
func (k FailureKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindOutdated:
		return "outdated"
	case KindLost:
		return "lost"
	case KindOutOfMemory:
		return "out of memory"
	case KindFatal:
		return "fatal"
	default:
		return "other"
	}
}

// Recoverable reports whether a reconfigure-and-retry may resolve the failure.
func (k FailureKind) Recoverable() bool {
	return k != KindFatal && k != KindTimeout
}

// Classify maps an acquisition error to its FailureKind.
func Classify(err error) FailureKind {
	switch {
	case errors.Is(err, wgpu.ErrTimeout):
		return KindTimeout
	case errors.Is(err, wgpu.ErrSurfaceOutdated):
		return KindOutdated
	case errors.Is(err, wgpu.ErrSurfaceLost):
		return KindLost
	case errors.Is(err, wgpu.ErrOutOfMemory):
		return KindOutOfMemory
	case errors.Is(err, wgpu.ErrDeviceLost), errors.Is(err, wgpu.ErrReleased):
		return KindFatal
	default:
		return KindOther
	}
}

// AcquireError is returned by Manager.Acquire when no frame could be
// obtained.
type AcquireError struct {
	Kind FailureKind
	// Retried is true if the failure happened on the retry attempt.
	Retried bool
	Err     error
}

func (e *AcquireError) Error() string {
	if e.Retried {
		return fmt.Sprintf("surface: acquire failed after retry (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("surface: acquire failed (%s): %v", e.Kind, e.Err)
}

func (e *AcquireError) Unwrap() error { return e.Err }

// Is reports whether target is ErrAcquireFailed.
func (e *AcquireError) Is(target error) bool {
	return target == ErrAcquireFailed
}
