package analysis

import (
	"math"
	"sort"
)

// Tempo search bounds in beats per minute.
const (
	minBPM = 30.0
	maxBPM = 300.0

	// priorBPM centers the log-normal candidate weighting.
	priorBPM = 120.0
)

// OnsetStrength computes a per-frame onset envelope: the positive spectral
// flux of the log mel spectrogram between consecutive frames. The first
// frame is always 0.
func (a *Analyzer) OnsetStrength(samples []float64) []float64 {
	cfg := a.cfg
	frames := a.numFrames(len(samples))
	if frames == 0 {
		return nil
	}

	halfFFT := cfg.FFTSize/2 + 1
	re := make([]float64, cfg.FFTSize)
	im := make([]float64, cfg.FFTSize)
	mag := make([]float64, halfFFT)

	prev := make([]float64, cfg.NumMels)
	cur := make([]float64, cfg.NumMels)

	env := make([]float64, frames)
	for t := 0; t < frames; t++ {
		a.spectrum(samples, t*cfg.HopSize, re, im, mag)

		for m := 0; m < cfg.NumMels; m++ {
			sum := 0.0
			for k, w := range a.melBank[m] {
				sum += w * mag[k] * mag[k]
			}
			if sum < 1e-10 {
				sum = 1e-10
			}
			cur[m] = math.Log(sum)
		}

		if t > 0 {
			flux := 0.0
			for m := range cur {
				if d := cur[m] - prev[m]; d > 0 {
					flux += d
				}
			}
			env[t] = flux
		}
		copy(prev, cur)
	}
	return env
}

// Tempo estimates the track tempo from the onset envelope autocorrelation.
// It returns BPM candidates in decreasing order of confidence; the slice is
// empty only when the track is too short to frame.
func (a *Analyzer) Tempo(samples []float64) []float64 {
	env := a.OnsetStrength(samples)
	if len(env) == 0 {
		return nil
	}

	// Remove the envelope mean so silence does not correlate with itself.
	mean := 0.0
	for _, v := range env {
		mean += v
	}
	mean /= float64(len(env))
	for i := range env {
		env[i] -= mean
	}

	hopDur := float64(a.cfg.HopSize) / float64(a.cfg.SampleRate)
	minLag := int(60.0 / (maxBPM * hopDur))
	if minLag < 1 {
		minLag = 1
	}
	maxLag := int(60.0 / (minBPM * hopDur))
	if maxLag >= len(env) {
		maxLag = len(env) - 1
	}

	type candidate struct {
		bpm   float64
		score float64
	}
	var cands []candidate
	for lag := minLag; lag <= maxLag; lag++ {
		acf := 0.0
		for i := 0; i+lag < len(env); i++ {
			acf += env[i] * env[i+lag]
		}
		if acf <= 0 {
			continue
		}
		bpm := 60.0 / (float64(lag) * hopDur)
		// Log-normal prior over tempo, one octave standard deviation.
		oct := math.Log2(bpm / priorBPM)
		cands = append(cands, candidate{bpm: bpm, score: acf * math.Exp(-0.5*oct*oct)})
	}

	if len(cands) == 0 {
		return []float64{priorBPM}
	}

	sort.Slice(cands, func(i, j int) bool { return cands[i].score > cands[j].score })
	bpms := make([]float64, len(cands))
	for i, c := range cands {
		bpms[i] = c.bpm
	}
	return bpms
}
