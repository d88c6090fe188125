package karaoke

import (
	"math"
	"testing"
)

func TestWordErrorRate(t *testing.T) {
	tests := []struct {
		name       string
		ref, hyp   string
		want       float64
	}{
		{"identical", "joy to the world", "joy to the world", 0},
		{"both empty", "", "", 0},
		{"empty hypothesis", "joy to the world", "", 1},
		{"empty reference", "", "joy", 1},
		{"one substitution", "joy to the world", "joy to the moon", 0.25},
		{"one deletion", "joy to the world", "joy to the", 0.25},
		{"one insertion", "joy to the world", "joy to the whole world", 0.25},
		{"all wrong", "a b c d", "w x y z", 1},
		{"longer than reference", "hello", "hello there friend", 2},
		{"whitespace only reference", "   ", "joy", 1},
		{"extra whitespace ignored", "joy  to   the world", "joy to the world", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := WordErrorRate(tc.ref, tc.hyp)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("WordErrorRate(%q, %q) = %v, want %v", tc.ref, tc.hyp, got, tc.want)
			}
		})
	}
}
