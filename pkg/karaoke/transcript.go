package karaoke

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"strings"

	"github.com/jhuang314/telegramkaraoke/pkg/speech"
)

// Transcript returns the normalized transcript for a track, consulting the
// transcript cache first. The cache key is the track's group identity, so
// all takes of one song group share a single engine invocation.
//
// Nothing is cached when the engine fails.
func (e *Engine) Transcript(ctx context.Context, trackPath string) (string, error) {
	identity := GroupIdentity(trackPath)

	text, err := e.transcripts.Load(ctx, identity)
	if err == nil {
		e.log.Debug("transcript cache hit", "identity", identity)
		return text, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		// Unreadable cache entries are recomputed, not fatal.
		e.log.Warn("transcript cache read failed", "identity", identity, "err", err)
	}

	raw, err := e.transcribeTrack(ctx, trackPath)
	if err != nil {
		return "", &TranscriptionError{Track: trackPath, cause: err}
	}
	text = speech.Normalize(raw)

	if err := e.transcripts.Store(ctx, identity, text); err != nil {
		return "", err
	}
	e.log.Info("transcribed track", "identity", identity, "words", len(strings.Fields(text)))
	return text, nil
}

// transcribeTrack stages the track in a local temp file and runs the
// speech-to-text engine on it. The store may be remote (S3); the engine
// boundary works on local paths.
func (e *Engine) transcribeTrack(ctx context.Context, trackPath string) (string, error) {
	r, err := e.store.Read(ctx, trackPath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	tmp, err := os.CreateTemp("", "karaoke-*"+path.Ext(trackPath))
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	return e.stt.Transcribe(ctx, tmp.Name())
}
