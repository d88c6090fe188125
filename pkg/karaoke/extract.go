package karaoke

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Extract returns the feature record for a track, computing and caching it
// on first sight of the track's identity.
//
// On a cache hit the stored record is returned and neither the
// transcription engine nor the signal analysis runs. A cache write failure
// is returned as *CacheError together with the freshly computed record so
// callers can see what was computed, but it is still a failure; Compare
// treats it as fatal.
func (e *Engine) Extract(ctx context.Context, trackPath string) (*FeatureRecord, error) {
	identity := Identity(trackPath)

	rec, err := e.records.Load(ctx, identity)
	if err == nil {
		e.log.Debug("feature cache hit", "identity", identity)
		return rec, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		// Fall through to recomputation; a broken entry is not fatal.
		e.log.Warn("feature cache read failed", "identity", identity, "err", err)
	}

	text, err := e.Transcript(ctx, trackPath)
	if err != nil {
		return nil, err
	}

	samples, rate, err := e.loader.Load(ctx, trackPath)
	if err != nil {
		return nil, &FeatureExtractionError{Track: trackPath, cause: err}
	}
	if len(samples) == 0 || rate <= 0 {
		return nil, &FeatureExtractionError{Track: trackPath, cause: fmt.Errorf("no samples")}
	}

	rec = e.analyze(samples, rate)
	rec.Text = text
	if err := rec.Validate(); err != nil {
		return nil, &FeatureExtractionError{Track: trackPath, cause: err}
	}

	e.log.Info("extracted features",
		"identity", identity,
		"bpm", rec.BPM,
		"duration", rec.Duration,
		"voiced_frames", rec.PitchRange)

	if err := e.records.Store(ctx, identity, rec); err != nil {
		// The record is computed and valid; surface the write failure
		// alongside it.
		return rec, err
	}
	return rec, nil
}

// analyze reduces a sample buffer to its acoustic features.
func (e *Engine) analyze(samples []float64, rate int) *FeatureRecord {
	track := e.analyzer.PitchTrack(samples)

	var (
		sum    float64
		sumSq  float64
		voiced int
	)
	for _, p := range track {
		if p > 0 {
			sum += p
			sumSq += p * p
			voiced++
		}
	}

	rec := &FeatureRecord{
		Duration:   float64(len(samples)) / float64(rate),
		PitchTrack: math.Sqrt(sumSq),
		PitchRange: voiced,
	}
	if voiced > 0 {
		rec.AveragePitch = sum / float64(voiced)
	}
	if bpms := e.analyzer.Tempo(samples); len(bpms) > 0 {
		// Estimators may yield a candidate sequence; keep the scalar.
		rec.BPM = bpms[0]
	}
	return rec
}
