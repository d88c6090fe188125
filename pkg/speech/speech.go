// Package speech is the speech-to-text boundary of the karaoke pipeline.
//
// The pipeline only needs one operation: turn an audio file into raw text.
// The OpenAI Whisper implementation is the production engine; tests inject
// a TranscribeFunc.
package speech

import "context"

// Transcriber converts an audio file into raw (unnormalized) text.
//
// Implementations may be slow (seconds per call) and must be safe to call
// concurrently for distinct inputs.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// TranscribeFunc is an adapter to allow the use of ordinary functions as
// Transcribers.
type TranscribeFunc func(ctx context.Context, audioPath string) (string, error)

// Transcribe calls the underlying function.
func (f TranscribeFunc) Transcribe(ctx context.Context, audioPath string) (string, error) {
	return f(ctx, audioPath)
}
