// Package audio is an umbrella for the audio sub-packages:
//
//   - pcm: PCM sample format handling and float conversion
//   - codec/opus: Opus frame encoding and decoding (libopus)
//   - codec/mp3: MP3 decoding for reference recordings
//   - oggopus: Ogg Opus container decode and encode
//   - resampler: sample-rate conversion to the pipeline rate
//
// The pipeline format is 48 kHz mono 16-bit little-endian PCM; every
// decoder delivers it and every encoder consumes it.
package audio
