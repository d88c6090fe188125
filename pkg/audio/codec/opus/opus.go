// Package opus wraps libopus for decoding and encoding voice audio.
//
// The karaoke pipeline decodes Telegram voice clips (Ogg Opus, 48 kHz mono)
// into 16-bit PCM and re-encodes the combined take for the performance
// artifact.
package opus

/*
#cgo pkg-config: opus
#include <opus.h>
#include <stdlib.h>
*/
import "C"
import (
	"fmt"
	"time"
	"unsafe"
)

// Frame is a single raw Opus packet.
type Frame []byte

// FrameDuration is the canonical packet duration used for encoding.
const FrameDuration = 20 * time.Millisecond

// maxFrameSamples is the largest decodable frame: 120ms at 48kHz.
const maxFrameSamples = 5760

// Decoder wraps an Opus decoder.
type Decoder struct {
	sampleRate int
	channels   int
	cDec       *C.OpusDecoder
}

// NewDecoder creates a new Opus decoder.
// sampleRate must be 8000, 12000, 16000, 24000 or 48000; channels 1 or 2.
func NewDecoder(sampleRate, channels int) (*Decoder, error) {
	var cerr C.int
	cDec := C.opus_decoder_create(C.opus_int32(sampleRate), C.int(channels), &cerr)
	if cerr != C.OPUS_OK {
		return nil, fmt.Errorf("opus: decoder create failed: %s", C.GoString(C.opus_strerror(cerr)))
	}
	return &Decoder{sampleRate: sampleRate, channels: channels, cDec: cDec}, nil
}

// Close releases the decoder resources.
func (d *Decoder) Close() {
	if d.cDec != nil {
		C.opus_decoder_destroy(d.cDec)
		d.cDec = nil
	}
}

// Decode decodes one Opus packet to 16-bit little-endian PCM bytes.
func (d *Decoder) Decode(f Frame) ([]byte, error) {
	if d.cDec == nil {
		return nil, fmt.Errorf("opus: decoder is closed")
	}
	if len(f) == 0 {
		return nil, fmt.Errorf("opus: empty packet")
	}

	buf := make([]int16, maxFrameSamples*d.channels)
	n := C.opus_decode(d.cDec,
		(*C.uchar)(unsafe.Pointer(&f[0])), C.opus_int32(len(f)),
		(*C.opus_int16)(unsafe.Pointer(&buf[0])), C.int(maxFrameSamples), 0)
	if n < 0 {
		return nil, fmt.Errorf("opus: decode failed: %s", C.GoString(C.opus_strerror(n)))
	}

	out := make([]byte, 2*int(n)*d.channels)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(out)))
	return out, nil
}

// SampleRate returns the sample rate of this decoder.
func (d *Decoder) SampleRate() int { return d.sampleRate }

// Channels returns the number of channels of this decoder.
func (d *Decoder) Channels() int { return d.channels }

// Encoder wraps an Opus encoder.
type Encoder struct {
	sampleRate int
	channels   int
	cEnc       *C.OpusEncoder
}

// NewVoIPEncoder creates an Opus encoder tuned for voice signals.
func NewVoIPEncoder(sampleRate, channels int) (*Encoder, error) {
	var cerr C.int
	cEnc := C.opus_encoder_create(C.opus_int32(sampleRate), C.int(channels),
		C.OPUS_APPLICATION_VOIP, &cerr)
	if cerr != C.OPUS_OK {
		return nil, fmt.Errorf("opus: encoder create failed: %s", C.GoString(C.opus_strerror(cerr)))
	}
	return &Encoder{sampleRate: sampleRate, channels: channels, cEnc: cEnc}, nil
}

// Close releases the encoder resources.
func (e *Encoder) Close() {
	if e.cEnc != nil {
		C.opus_encoder_destroy(e.cEnc)
		e.cEnc = nil
	}
}

// Encode encodes frameSize samples per channel of 16-bit PCM into one
// Opus packet.
func (e *Encoder) Encode(pcm []int16, frameSize int) (Frame, error) {
	if e.cEnc == nil {
		return nil, fmt.Errorf("opus: encoder is closed")
	}
	if len(pcm) < frameSize*e.channels {
		return nil, fmt.Errorf("opus: need %d samples, have %d", frameSize*e.channels, len(pcm))
	}

	buf := make([]byte, 4000)
	n := C.opus_encode(e.cEnc,
		(*C.opus_int16)(unsafe.Pointer(&pcm[0])), C.int(frameSize),
		(*C.uchar)(unsafe.Pointer(&buf[0])), C.opus_int32(len(buf)))
	if n < 0 {
		return nil, fmt.Errorf("opus: encode failed: %s", C.GoString(C.opus_strerror(n)))
	}
	return Frame(buf[:n]), nil
}

// FrameSize returns the encoder's samples per channel for FrameDuration.
func (e *Encoder) FrameSize() int {
	return e.sampleRate * int(FrameDuration.Milliseconds()) / 1000
}

// SampleRate returns the sample rate of this encoder.
func (e *Encoder) SampleRate() int { return e.sampleRate }
