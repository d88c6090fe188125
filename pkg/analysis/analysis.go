// Package analysis derives pitch and tempo features from PCM audio.
//
// The pitch tracker is a short-time spectral peak picker: each frame is
// windowed, transformed, and its spectral peaks are refined by parabolic
// interpolation, yielding one dominant-pitch estimate per frame. The tempo
// estimator autocorrelates a mel-spectrum onset envelope and ranks BPM
// candidates against a prior centered on common song tempi.
package analysis

import "math"

// Config controls frame analysis parameters.
type Config struct {
	SampleRate int     // audio sample rate in Hz
	WindowSize int     // analysis window length in samples
	HopSize    int     // hop length in samples
	FFTSize    int     // FFT size (power of 2, >= WindowSize)
	NumMels    int     // mel bins for the onset envelope
	MinPitch   float64 // lowest pitch considered voiced, Hz
	MaxPitch   float64 // highest pitch considered voiced, Hz
	Threshold  float64 // peak threshold relative to the frame maximum
}

// DefaultConfig returns the analysis parameters for the given sample rate.
// Window and hop cover roughly 43 ms and 10.7 ms at 48 kHz.
func DefaultConfig(sampleRate int) Config {
	return Config{
		SampleRate: sampleRate,
		WindowSize: 2048,
		HopSize:    512,
		FFTSize:    2048,
		NumMels:    40,
		MinPitch:   65,   // C2
		MaxPitch:   2093, // C7
		Threshold:  0.1,
	}
}

// Analyzer computes pitch tracks and tempo estimates from PCM samples.
type Analyzer struct {
	cfg     Config
	window  []float64
	melBank [][]float64
}

// New creates an Analyzer with the given config.
func New(cfg Config) *Analyzer {
	return &Analyzer{
		cfg:     cfg,
		window:  hannWindow(cfg.WindowSize),
		melBank: melFilterBank(cfg.NumMels, cfg.FFTSize, cfg.SampleRate, 0, float64(cfg.SampleRate)/2),
	}
}

// numFrames returns the frame count for n samples, or 0 if too short.
func (a *Analyzer) numFrames(n int) int {
	if n < a.cfg.WindowSize {
		return 0
	}
	return (n-a.cfg.WindowSize)/a.cfg.HopSize + 1
}

// spectrum computes the magnitude spectrum of the frame starting at off.
// re and im are scratch buffers of length FFTSize; mag has FFTSize/2+1.
func (a *Analyzer) spectrum(samples []float64, off int, re, im, mag []float64) {
	for i := 0; i < a.cfg.WindowSize; i++ {
		re[i] = samples[off+i] * a.window[i]
	}
	for i := a.cfg.WindowSize; i < a.cfg.FFTSize; i++ {
		re[i] = 0
	}
	for i := range im {
		im[i] = 0
	}
	FFT(re, im)
	for i := range mag {
		mag[i] = math.Sqrt(re[i]*re[i] + im[i]*im[i])
	}
}
