package karaoke

import (
	"path"
	"strings"
)

// Identity returns the cache identity of a track: the path basename up to
// the first dot. "takes/abc123_combined.ogg" -> "abc123_combined".
//
// Identity is filename-based, not content-based: reusing a filename stem
// for different audio silently serves the stale cache entry.
func Identity(p string) string {
	base := path.Base(p)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}

// GroupIdentity returns the transcript cache identity: the track identity
// with any suffix after the first underscore stripped, so distinct segment
// or take markers collapse to one entry per song-take group.
// "abc123_combined.ogg" -> "abc123".
func GroupIdentity(p string) string {
	id := Identity(p)
	if i := strings.IndexByte(id, '_'); i >= 0 {
		id = id[:i]
	}
	return id
}
