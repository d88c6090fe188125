package karaoke

import "strings"

// WordErrorRate returns the word-level edit distance from the reference
// text to the hypothesis, normalized by the reference word count. It can
// exceed 1 when the hypothesis is much longer than the reference.
func WordErrorRate(reference, hypothesis string) float64 {
	ref := strings.Fields(reference)
	hyp := strings.Fields(hypothesis)

	if len(ref) == 0 {
		if len(hyp) == 0 {
			return 0
		}
		return 1
	}

	// Two-row Levenshtein over words.
	prev := make([]int, len(hyp)+1)
	cur := make([]int, len(hyp)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ref); i++ {
		cur[0] = i
		for j := 1; j <= len(hyp); j++ {
			if ref[i-1] == hyp[j-1] {
				cur[j] = prev[j-1]
				continue
			}
			m := prev[j-1] // substitution
			if prev[j] < m {
				m = prev[j] // deletion
			}
			if cur[j-1] < m {
				m = cur[j-1] // insertion
			}
			cur[j] = m + 1
		}
		prev, cur = cur, prev
	}

	return float64(prev[len(hyp)]) / float64(len(ref))
}
