package karaoke

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNoClips is returned when assembly is invoked with no clips.
	ErrNoClips = errors.New("karaoke: no clips to assemble")

	// ErrCacheMiss is returned by cache stores when an identity has no entry.
	ErrCacheMiss = errors.New("karaoke: cache miss")
)

// AssemblyError indicates a bad clip sequence or a codec failure while
// building the combined take.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type AssemblyError struct {
	Clip  string // offending clip path; empty for sequence-level failures
	cause error
}

func (e *AssemblyError) Error() string {
	if e.Clip == "" {
		return fmt.Sprintf("assembly failed: %v", e.cause)
	}
	return fmt.Sprintf("assembly failed on clip %s: %v", e.Clip, e.cause)
}

func (e *AssemblyError) Unwrap() error { return e.cause }

// TranscriptionError indicates the speech-to-text engine failed on a track.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type TranscriptionError struct {
	Track string
	cause error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed for %s: %v", e.Track, e.cause)
}

func (e *TranscriptionError) Unwrap() error { return e.cause }

// FeatureExtractionError indicates audio decoding or signal analysis failed.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type FeatureExtractionError struct {
	Track string
	cause error
}

func (e *FeatureExtractionError) Error() string {
	return fmt.Sprintf("feature extraction failed for %s: %v", e.Track, e.cause)
}

func (e *FeatureExtractionError) Unwrap() error { return e.cause }

// CacheError indicates an I/O failure reading or writing a persisted cache
// entry. Read failures are non-fatal (the caller recomputes); a write
// failure is surfaced alongside the computed record.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type CacheError struct {
	Op       string // "read" or "write"
	Identity string
	cause    error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s failed for %s: %v", e.Op, e.Identity, e.cause)
}

func (e *CacheError) Unwrap() error { return e.cause }
