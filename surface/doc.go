// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface manages the presentation surface of a sample window.
//
// A Manager owns the surface configuration and is the only place where the
// surface is configured. It keeps the configured size in step with the
// window and recovers from transient acquisition failures.
//
// # States
//
// The manager is in one of two states:
//
//   - Configured: the last Configure succeeded and no hint says otherwise.
//   - NeedsReconfigure: the previous acquisition reported the surface as
//     suboptimal, or the caller marked it outdated. The next Acquire
//     reconfigures with the current window size before acquiring.
//
// # Acquisition failures
//
// Acquire classifies a failed acquisition with Classify:
//
//   - KindTimeout: retried once.
//   - KindOutdated, KindLost, KindOutOfMemory, KindOther: the surface is
//     reconfigured with the current window size and acquisition retried once.
//   - KindFatal: returned immediately.
//
// A second failure is returned as an *AcquireError, which matches
// ErrAcquireFailed with errors.Is. No frame is produced in that case.
//
// # Usage
//
//	caps := surface.CapabilitiesOf(adapter.GetSurfaceCapabilities(s))
//	mgr, err := surface.NewManager(surface.NewWGPUTarget(s, device), window, caps)
//	...
//	frame, view, err := mgr.Acquire()
//	if err != nil {
//	    return err
//	}
//	// record and submit commands targeting view
//	err = frame.Present()
package surface
