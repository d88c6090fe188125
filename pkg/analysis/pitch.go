package analysis

// PitchTrack returns one dominant-pitch estimate in Hz per frame.
//
// For each frame, spectral peaks above Threshold times the frame maximum
// are located, refined by parabolic interpolation, and restricted to the
// [MinPitch, MaxPitch] band. The frame's value is the highest qualifying
// pitch; frames with no qualifying peak (silence, unvoiced) yield 0.
func (a *Analyzer) PitchTrack(samples []float64) []float64 {
	cfg := a.cfg
	frames := a.numFrames(len(samples))
	if frames == 0 {
		return nil
	}

	halfFFT := cfg.FFTSize/2 + 1
	binHz := float64(cfg.SampleRate) / float64(cfg.FFTSize)

	re := make([]float64, cfg.FFTSize)
	im := make([]float64, cfg.FFTSize)
	mag := make([]float64, halfFFT)

	track := make([]float64, frames)
	for t := 0; t < frames; t++ {
		a.spectrum(samples, t*cfg.HopSize, re, im, mag)

		var frameMax float64
		for _, m := range mag {
			if m > frameMax {
				frameMax = m
			}
		}
		if frameMax == 0 {
			continue
		}
		floor := cfg.Threshold * frameMax

		var pitch float64
		for k := 1; k < halfFFT-1; k++ {
			if mag[k] < floor || mag[k] <= mag[k-1] || mag[k] < mag[k+1] {
				continue
			}
			f := (float64(k) + peakOffset(mag[k-1], mag[k], mag[k+1])) * binHz
			if f < cfg.MinPitch || f > cfg.MaxPitch {
				continue
			}
			if f > pitch {
				pitch = f
			}
		}
		track[t] = pitch
	}
	return track
}

// peakOffset refines a local maximum at the center of three magnitudes by
// fitting a parabola. The result is in (-0.5, 0.5) bins.
func peakOffset(left, center, right float64) float64 {
	denom := left - 2*center + right
	if denom == 0 {
		return 0
	}
	return 0.5 * (left - right) / denom
}
