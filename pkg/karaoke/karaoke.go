// Package karaoke implements the performance comparison engine: it glues
// per-line voice recordings into one take, derives acoustic and linguistic
// features from audio, caches those features, and scores a candidate
// performance against a reference recording.
//
// All audio paths are forward-slash paths relative to the engine's
// FileStore root. The engine itself holds no conversational state; callers
// hand it file paths and consume the returned data.
package karaoke

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/jhuang314/telegramkaraoke/pkg/analysis"
	"github.com/jhuang314/telegramkaraoke/pkg/audio/oggopus"
	"github.com/jhuang314/telegramkaraoke/pkg/speech"
	"github.com/jhuang314/telegramkaraoke/pkg/storage"
)

// ClipCodec decodes voice clips into pipeline PCM and encodes pipeline PCM
// back into the clip container. The production codec is Ogg Opus.
type ClipCodec interface {
	// Decode reads a whole clip and returns 48 kHz mono 16-bit LE PCM.
	Decode(r io.Reader) ([]byte, error)

	// Encode writes 48 kHz mono 16-bit LE PCM as a clip stream.
	Encode(w io.Writer, pcm []byte) error
}

// oggCodec is the production ClipCodec.
type oggCodec struct{}

func (oggCodec) Decode(r io.Reader) ([]byte, error)   { return oggopus.Decode(r) }
func (oggCodec) Encode(w io.Writer, pcm []byte) error { return oggopus.Encode(w, pcm) }

// Engine is the performance comparison engine.
//
// An Engine is safe for concurrent use. Cache writes are idempotent (the
// same input yields the same record), so two extractions racing on the same
// identity cost redundant work, never corruption.
type Engine struct {
	store       storage.FileStore
	stt         speech.Transcriber
	records     RecordStore
	transcripts TranscriptStore
	clips       ClipCodec
	loader      TrackLoader
	analyzer    *analysis.Analyzer
	log         *slog.Logger
	workers     int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRecordStore overrides the feature-record cache backend.
func WithRecordStore(s RecordStore) Option {
	return func(e *Engine) { e.records = s }
}

// WithTranscriptStore overrides the transcript cache backend.
func WithTranscriptStore(s TranscriptStore) Option {
	return func(e *Engine) { e.transcripts = s }
}

// WithClipCodec overrides the voice-clip codec.
func WithClipCodec(c ClipCodec) Option {
	return func(e *Engine) { e.clips = c }
}

// WithTrackLoader overrides the sample loader used by feature extraction.
func WithTrackLoader(l TrackLoader) Option {
	return func(e *Engine) { e.loader = l }
}

// WithAnalysisConfig overrides the pitch/tempo analysis parameters.
func WithAnalysisConfig(cfg analysis.Config) Option {
	return func(e *Engine) { e.analyzer = analysis.New(cfg) }
}

// WithLogger sets the engine logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithWorkers bounds the extraction worker pool. Defaults to the host's
// parallelism.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New creates an Engine that persists artifacts and caches through store
// and transcribes audio with stt.
func New(store storage.FileStore, stt speech.Transcriber, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		stt:      stt,
		clips:    oggCodec{},
		analyzer: analysis.New(analysis.DefaultConfig(oggopus.Format.SampleRate())),
		log:      slog.Default(),
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		o(e)
	}
	if e.records == nil {
		e.records = NewFileRecordStore(store)
	}
	if e.transcripts == nil {
		e.transcripts = NewFileTranscriptStore(store)
	}
	if e.loader == nil {
		e.loader = &storeLoader{store: store, clips: e.clips}
	}
	return e
}
