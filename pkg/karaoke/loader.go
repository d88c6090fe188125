package karaoke

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/jhuang314/telegramkaraoke/pkg/audio/codec/mp3"
	"github.com/jhuang314/telegramkaraoke/pkg/audio/oggopus"
	"github.com/jhuang314/telegramkaraoke/pkg/audio/pcm"
	"github.com/jhuang314/telegramkaraoke/pkg/audio/resampler"
	"github.com/jhuang314/telegramkaraoke/pkg/storage"
)

// TrackLoader loads a track's samples for analysis.
type TrackLoader interface {
	// Load returns normalized mono float64 samples and their sample rate.
	Load(ctx context.Context, trackPath string) (samples []float64, sampleRate int, err error)
}

// storeLoader reads tracks from a FileStore, decoding by file extension.
// Ogg Opus voice clips and MP3 reference tracks are supported; everything
// is delivered at the 48 kHz mono analysis rate.
type storeLoader struct {
	store storage.FileStore
	clips ClipCodec
}

func (l *storeLoader) Load(ctx context.Context, trackPath string) ([]float64, int, error) {
	r, err := l.store.Read(ctx, trackPath)
	if err != nil {
		return nil, 0, err
	}
	defer r.Close()

	rate := oggopus.Format.SampleRate()
	switch ext := strings.ToLower(path.Ext(trackPath)); ext {
	case ".ogg", ".oga", ".opus":
		data, err := l.clips.Decode(r)
		if err != nil {
			return nil, 0, err
		}
		return pcm.ToFloat64(data), rate, nil

	case ".mp3":
		data, srcRate, err := mp3.Decode(r)
		if err != nil {
			return nil, 0, err
		}
		samples := pcm.ToFloat64(pcm.DownmixStereo(data))
		samples, err = resampler.Resample(samples, srcRate, rate)
		if err != nil {
			return nil, 0, err
		}
		return samples, rate, nil

	default:
		return nil, 0, fmt.Errorf("karaoke: unsupported track format %q", ext)
	}
}
