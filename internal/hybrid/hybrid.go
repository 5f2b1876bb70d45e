// Package hybrid sequences the fast CV classification pass and an
// optional slower fallback path behind a single cancellation probe.
//
// The fast path is tried first. Its result is kept only when the
// confidence score clears the threshold; otherwise the fallback, when
// configured, takes over and its result is authoritative. A fast-path
// failure with a configured fallback is a degraded condition, not an
// error: the fallback runs against the original image bytes.
package hybrid

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cube-scan/internal/face"
)

// ErrCancelled reports a cooperative abort: the initiating client is gone
// and no further work should start. It is distinct from ordinary failures
// so the HTTP layer can map it to a non-error status.
var ErrCancelled = errors.New("analysis cancelled")

// DefaultThreshold is the minimum CV confidence kept without consulting
// the fallback.
const DefaultThreshold = 0.7

// Probe is a cooperative cancellation check invoked at fixed checkpoints.
// It must be cheap and side-effect free. A non-nil return aborts the
// request without starting the fallback.
type Probe func() error

// Fallback is the slower, externally supplied classification path. It may
// block on network I/O; timeout policy belongs to its own transport. It
// receives the original image bytes and the request's probe so one probe
// chain governs the whole request lifetime.
type Fallback func(ctx context.Context, image []byte, probe Probe) (face.Face, error)

// Options configure one hybrid analysis.
type Options struct {
	// Threshold is the minimum acceptable CV confidence. Zero means
	// DefaultThreshold; a negative value accepts every CV result, since
	// confidence scores are never below zero.
	Threshold float64
	// Fallback, when non-nil, handles low-confidence and failed CV passes.
	Fallback Fallback

	// classify overrides the CV pass in tests.
	classify func([]byte) (face.Face, error)
}

// Analyze classifies a cube face from raw image bytes, deciding per call
// whether the fast CV pass is trustworthy or the fallback must run.
//
// The probe fires immediately before and after the CV pass. Cancellation
// unwinds at once and never converts into a fallback invocation. When no
// fallback is configured a low-confidence CV result is still returned
// rather than dropped, and CV failures propagate.
func Analyze(ctx context.Context, image []byte, probe Probe, opts Options) (face.Face, error) {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	classify := opts.classify
	if classify == nil {
		classify = face.Analyze
	}
	log := slog.Default()

	if err := check(probe); err != nil {
		return face.Face{}, err
	}

	candidate, cvErr := classify(image)
	if cvErr != nil {
		if opts.Fallback == nil {
			return face.Face{}, fmt.Errorf("cv analysis: %w", cvErr)
		}
		log.Info("cv analysis failed, using fallback", "err", cvErr)
		return opts.Fallback(ctx, image, probe)
	}

	if err := check(probe); err != nil {
		return face.Face{}, err
	}

	score := face.Confidence(candidate)
	log.Info("cv confidence computed",
		"confidence", score,
		"center", candidate.At(face.Center).Code(),
	)

	if score >= threshold {
		return candidate, nil
	}

	if opts.Fallback == nil {
		log.Warn("confidence below threshold with no fallback, returning cv result",
			"confidence", score, "threshold", threshold)
		return candidate, nil
	}

	log.Info("confidence below threshold, using fallback",
		"confidence", score, "threshold", threshold)
	return opts.Fallback(ctx, image, probe)
}

// check runs the probe, folding any failure into ErrCancelled.
func check(probe Probe) error {
	if probe == nil {
		return nil
	}
	if err := probe(); err != nil {
		if errors.Is(err, ErrCancelled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	return nil
}
