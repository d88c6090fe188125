package karaoke

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"

	"github.com/jhuang314/telegramkaraoke/pkg/storage"
)

// FeatureRecord is the durable, cacheable summary of one audio track.
// Records are computed once per identity, persisted, and never mutated.
type FeatureRecord struct {
	// BPM is the estimated tempo. If the estimator yields several
	// candidates, the first (most confident) is stored.
	BPM float64 `json:"bpm" msgpack:"bpm"`

	// Duration of the track in seconds, > 0.
	Duration float64 `json:"duration" msgpack:"duration"`

	// AveragePitch is the mean of the strictly positive per-frame pitch
	// estimates; 0 if no voiced frames were found.
	AveragePitch float64 `json:"average_pitch" msgpack:"average_pitch"`

	// PitchTrack is the Euclidean norm of the positive per-frame pitch
	// estimates. The raw per-frame sequence is not retained.
	PitchTrack float64 `json:"pitch_track" msgpack:"pitch_track"`

	// Text is the normalized transcript of the track.
	Text string `json:"text" msgpack:"text"`

	// PitchRange is the count of voiced frames; used as a normalization
	// divisor during scoring, not a musical range.
	PitchRange int `json:"pitch_range" msgpack:"pitch_range"`
}

// Validate reports whether the record satisfies its invariants.
func (r *FeatureRecord) Validate() error {
	for name, v := range map[string]float64{
		"bpm":           r.BPM,
		"duration":      r.Duration,
		"average_pitch": r.AveragePitch,
		"pitch_track":   r.PitchTrack,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("karaoke: feature %s is not finite", name)
		}
	}
	if r.Duration <= 0 {
		return fmt.Errorf("karaoke: duration %v, must be > 0", r.Duration)
	}
	if r.PitchRange < 0 {
		return fmt.Errorf("karaoke: pitch_range %d, must be >= 0", r.PitchRange)
	}
	return nil
}

// RecordStore persists feature records keyed by track identity.
// Implementations must tolerate concurrent writers on the same identity;
// writes are idempotent, last writer wins.
type RecordStore interface {
	// Load returns the record for an identity, or ErrCacheMiss.
	Load(ctx context.Context, identity string) (*FeatureRecord, error)

	// Store persists the record for an identity, overwriting any entry.
	Store(ctx context.Context, identity string, rec *FeatureRecord) error
}

// TranscriptStore persists normalized transcripts keyed by group identity.
type TranscriptStore interface {
	// Load returns the transcript for an identity, or ErrCacheMiss.
	Load(ctx context.Context, identity string) (string, error)

	// Store persists the transcript for an identity.
	Store(ctx context.Context, identity string, text string) error
}

const (
	featuresDir    = "features"
	transcriptsDir = "transcripts"
)

// fileRecordStore keeps records as <identity>_features.json files under the
// features directory of a FileStore.
type fileRecordStore struct {
	store storage.FileStore
}

// NewFileRecordStore creates a RecordStore persisting JSON files through fs.
func NewFileRecordStore(fs storage.FileStore) RecordStore {
	return &fileRecordStore{store: fs}
}

func recordPath(identity string) string {
	return featuresDir + "/" + identity + "_features.json"
}

func (s *fileRecordStore) Load(ctx context.Context, identity string) (*FeatureRecord, error) {
	r, err := s.store.Read(ctx, recordPath(identity))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrCacheMiss
		}
		return nil, &CacheError{Op: "read", Identity: identity, cause: err}
	}
	defer r.Close()

	var rec FeatureRecord
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, &CacheError{Op: "read", Identity: identity, cause: err}
	}
	return &rec, nil
}

func (s *fileRecordStore) Store(ctx context.Context, identity string, rec *FeatureRecord) error {
	w, err := s.store.Write(ctx, recordPath(identity))
	if err != nil {
		return &CacheError{Op: "write", Identity: identity, cause: err}
	}
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		w.Close()
		return &CacheError{Op: "write", Identity: identity, cause: err}
	}
	if err := w.Close(); err != nil {
		return &CacheError{Op: "write", Identity: identity, cause: err}
	}
	return nil
}

// fileTranscriptStore keeps transcripts as <identity>.txt files under the
// transcripts directory of a FileStore.
type fileTranscriptStore struct {
	store storage.FileStore
}

// NewFileTranscriptStore creates a TranscriptStore persisting text files
// through fs.
func NewFileTranscriptStore(fs storage.FileStore) TranscriptStore {
	return &fileTranscriptStore{store: fs}
}

func transcriptPath(identity string) string {
	return transcriptsDir + "/" + identity + ".txt"
}

func (s *fileTranscriptStore) Load(ctx context.Context, identity string) (string, error) {
	r, err := s.store.Read(ctx, transcriptPath(identity))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrCacheMiss
		}
		return "", &CacheError{Op: "read", Identity: identity, cause: err}
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", &CacheError{Op: "read", Identity: identity, cause: err}
	}
	return string(data), nil
}

func (s *fileTranscriptStore) Store(ctx context.Context, identity string, text string) error {
	w, err := s.store.Write(ctx, transcriptPath(identity))
	if err != nil {
		return &CacheError{Op: "write", Identity: identity, cause: err}
	}
	if _, err := io.WriteString(w, text); err != nil {
		w.Close()
		return &CacheError{Op: "write", Identity: identity, cause: err}
	}
	if err := w.Close(); err != nil {
		return &CacheError{Op: "write", Identity: identity, cause: err}
	}
	return nil
}
