// Package mp3 decodes MP3 audio into 16-bit PCM using the pure-Go
// hajimehoshi/go-mp3 decoder. Reference song tracks ship as MP3; the
// pipeline decodes them once per extraction and resamples to the analysis
// format.
package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// Decode reads an entire MP3 stream and returns interleaved 16-bit
// little-endian stereo PCM along with the source sample rate.
//
// go-mp3 always emits two channels; mono sources are duplicated across
// both. Callers downmix as needed.
func Decode(r io.Reader) (data []byte, sampleRate int, err error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("mp3: decode failed: %w", err)
	}

	buf := make([]byte, 16384)
	for {
		n, err := dec.Read(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("mp3: read failed: %w", err)
		}
	}

	if len(data) == 0 {
		return nil, 0, fmt.Errorf("mp3: stream contains no samples")
	}
	return data, dec.SampleRate(), nil
}
