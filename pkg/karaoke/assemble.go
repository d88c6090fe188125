package karaoke

import (
	"context"

	"github.com/jhuang314/telegramkaraoke/pkg/audio/oggopus"
)

// combinedSuffix marks an assembled take artifact.
const combinedSuffix = "_combined"

// CombinedPath returns the artifact path the combined take of a clip
// sequence is written to: the first clip's identity with the combined
// suffix, alongside the clips.
func CombinedPath(firstClip string) string {
	return Identity(firstClip) + combinedSuffix + ".ogg"
}

// Assemble decodes the ordered per-line clips, concatenates their samples
// with no gaps or crossfades, and persists the result as an Ogg Opus
// artifact. It returns the artifact's path within the engine's store.
//
// All clips must already share the pipeline sample rate; resample before
// assembly if not. Any decode failure aborts the call with *AssemblyError.
func (e *Engine) Assemble(ctx context.Context, clips []string) (string, error) {
	if len(clips) == 0 {
		return "", &AssemblyError{cause: ErrNoClips}
	}

	var track []byte
	for _, clip := range clips {
		if err := ctx.Err(); err != nil {
			return "", &AssemblyError{Clip: clip, cause: err}
		}

		r, err := e.store.Read(ctx, clip)
		if err != nil {
			return "", &AssemblyError{Clip: clip, cause: err}
		}
		data, err := e.clips.Decode(r)
		r.Close()
		if err != nil {
			return "", &AssemblyError{Clip: clip, cause: err}
		}
		track = append(track, data...)
	}

	out := CombinedPath(clips[0])
	w, err := e.store.Write(ctx, out)
	if err != nil {
		return "", &AssemblyError{Clip: out, cause: err}
	}
	if err := e.clips.Encode(w, track); err != nil {
		w.Close()
		return "", &AssemblyError{Clip: out, cause: err}
	}
	if err := w.Close(); err != nil {
		return "", &AssemblyError{Clip: out, cause: err}
	}

	e.log.Info("assembled take",
		"clips", len(clips),
		"artifact", out,
		"duration", oggopus.Format.Duration(int64(len(track))))
	return out, nil
}
