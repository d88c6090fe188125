package analysis

import (
	"math"
	"testing"
)

// sine generates n samples of a sine tone at freq Hz.
func sine(freq float64, n, rate int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = 0.8 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
	return s
}

func TestFFTSingleTone(t *testing.T) {
	const n = 1024
	re := make([]float64, n)
	im := make([]float64, n)
	// Bin 8 exactly: 8 cycles over the transform length.
	for i := range re {
		re[i] = math.Cos(2 * math.Pi * 8 * float64(i) / n)
	}
	FFT(re, im)

	peak := 0
	var peakMag float64
	for k := 0; k < n/2; k++ {
		m := math.Hypot(re[k], im[k])
		if m > peakMag {
			peakMag = m
			peak = k
		}
	}
	if peak != 8 {
		t.Fatalf("peak bin = %d, want 8", peak)
	}
	// A full-scale cosine concentrates n/2 of energy in its bin.
	if math.Abs(peakMag-n/2) > 1 {
		t.Fatalf("peak magnitude = %v, want about %v", peakMag, n/2)
	}
}

func TestPitchTrackSine(t *testing.T) {
	const rate = 48000
	a := New(DefaultConfig(rate))

	track := a.PitchTrack(sine(440, rate, rate))
	if len(track) == 0 {
		t.Fatal("empty pitch track")
	}

	voiced := 0
	for _, p := range track {
		if p == 0 {
			continue
		}
		voiced++
		if math.Abs(p-440) > 10 {
			t.Fatalf("pitch = %.2f, want about 440", p)
		}
	}
	if voiced < len(track)/2 {
		t.Fatalf("voiced frames = %d of %d, want a majority", voiced, len(track))
	}
}

func TestPitchTrackSilence(t *testing.T) {
	const rate = 48000
	a := New(DefaultConfig(rate))

	for i, p := range a.PitchTrack(make([]float64, rate)) {
		if p != 0 {
			t.Fatalf("frame %d pitch = %v, want 0 for silence", i, p)
		}
	}
}

func TestPitchTrackShortInput(t *testing.T) {
	a := New(DefaultConfig(48000))
	if track := a.PitchTrack(make([]float64, 100)); track != nil {
		t.Fatalf("track = %v, want nil for input shorter than a window", track)
	}
}

func TestTempoClickTrack(t *testing.T) {
	const rate = 48000
	a := New(DefaultConfig(rate))

	// 8 seconds of clicks at 120 BPM (one every 0.5 s).
	samples := make([]float64, 8*rate)
	for i := 0; i < len(samples); i += rate / 2 {
		for j := 0; j < 64 && i+j < len(samples); j++ {
			samples[i+j] = 1.0
		}
	}

	bpms := a.Tempo(samples)
	if len(bpms) == 0 {
		t.Fatal("no tempo candidates")
	}
	if bpms[0] < 110 || bpms[0] > 130 {
		t.Fatalf("top tempo = %.2f, want about 120", bpms[0])
	}
}

func TestTempoTooShort(t *testing.T) {
	a := New(DefaultConfig(48000))
	if bpms := a.Tempo(make([]float64, 100)); bpms != nil {
		t.Fatalf("bpms = %v, want nil for unframeable input", bpms)
	}
}
