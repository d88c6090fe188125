// Package resampler converts audio between sample rates using a pure Go
// resampler (no CGO/FFI dependencies).
//
// The karaoke pipeline analyzes everything at 48 kHz mono; reference tracks
// decoded from MP3 (commonly 44.1 kHz) pass through here first.
package resampler

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"
)

// Resample converts mono samples from srcRate to dstRate.
// Samples are normalized float64 in [-1, 1]. If the rates match, the input
// is returned unchanged.
func Resample(samples []float64, srcRate, dstRate int) ([]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("resampler: invalid rates %d -> %d", srcRate, dstRate)
	}
	if srcRate == dstRate {
		return samples, nil
	}

	rs, err := resampling.New(&resampling.Config{
		InputRate:  float64(srcRate),
		OutputRate: float64(dstRate),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("resampler: %w", err)
	}

	out, err := rs.Process(samples)
	if err != nil {
		return nil, fmt.Errorf("resampler: %w", err)
	}
	return out, nil
}
