package karaoke

import "math"

// Scoring constants.
const (
	// MaxScore is the perfect score.
	MaxScore = 100000

	// durationGate is the mismatch threshold: a performance shorter than
	// this fraction of the other's duration scores 0 outright.
	durationGate = 0.5

	// acousticWeight and lyricWeight split the composite. Lyrics dominate:
	// missed words hurt far more than drifting pitch or tempo.
	acousticWeight = 0.15
	lyricWeight    = 0.85
)

// Score compares a candidate feature record against a reference and
// returns an integer in [0, MaxScore]. It is pure and deterministic.
//
// Wildly mismatched durations (either less than half the other) score 0
// by design rather than raising: a singer who stopped early is a normal
// occurrence, not an error.
//
// Score is not symmetric: word error rate is normalized by the reference
// word count, so swapping the arguments can change the lyric term. The
// duration gate is symmetric.
func Score(ref, cand *FeatureRecord) int {
	if ref.Duration*durationGate-cand.Duration > 0 ||
		cand.Duration*durationGate-ref.Duration > 0 {
		return 0
	}

	wer := 0.0
	if ref.Text != "" && cand.Text != "" {
		wer = WordErrorRate(ref.Text, cand.Text)
	}

	// Zero denominators (no voiced frames, no tempo) mean the dimension
	// carries no information; its distance contributes nothing.
	pitchDiff := 0.0
	if m := max(ref.PitchRange, cand.PitchRange); m > 0 {
		pitchDiff = math.Abs(ref.PitchTrack-cand.PitchTrack) / float64(m)
	}
	tempoDiff := 0.0
	if m := math.Max(ref.BPM, cand.BPM); m > 0 {
		tempoDiff = math.Abs(ref.BPM-cand.BPM) / m
	}

	// The acoustic term is bounded above by 1 (diffs are non-negative), so
	// raw never exceeds acousticWeight + lyricWeight = 1.
	raw := (1-pitchDiff-tempoDiff)*acousticWeight + (1-wer)*lyricWeight
	if raw < 0 {
		raw = 0
	}
	return int(math.Floor(raw * MaxScore))
}
