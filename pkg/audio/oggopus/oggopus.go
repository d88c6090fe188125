// Package oggopus reads and writes Ogg Opus files.
//
// Writing uses pion's oggwriter; reading validates the identification
// header with pion's oggreader and then walks the page lacing tables
// itself, so files from encoders that pack many packets per page decode
// the same as this package's own one-packet-per-page output. Packet
// coding uses the libopus bindings in pkg/audio/codec/opus. Decoding
// always produces the 48 kHz mono pipeline format, downmixing stereo
// sources.
package oggopus

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pion/rtp"
	"github.com/pion/webrtc/v3/pkg/media/oggreader"
	"github.com/pion/webrtc/v3/pkg/media/oggwriter"

	"github.com/jhuang314/telegramkaraoke/pkg/audio/codec/opus"
	"github.com/jhuang314/telegramkaraoke/pkg/audio/pcm"
)

// Format is the PCM format produced by Decode and consumed by Encode.
const Format = pcm.L16Mono48K

var (
	opusHead = []byte("OpusHead")
	opusTags = []byte("OpusTags")
)

// Ogg page framing.
const pageHeaderLen = 27

var pageSignature = []byte("OggS")

// packets splits a raw Ogg stream into its logical packets, following the
// segment lacing tables and reassembling packets that continue across page
// boundaries. A packet left open at end of stream is dropped as truncated.
// Page checksums are not verified.
func packets(raw []byte) ([][]byte, error) {
	var (
		pkts    [][]byte
		pending []byte
	)
	for off := 0; off < len(raw); {
		if len(raw)-off < pageHeaderLen {
			return nil, fmt.Errorf("oggopus: truncated page header at offset %d", off)
		}
		if !bytes.Equal(raw[off:off+4], pageSignature) {
			return nil, fmt.Errorf("oggopus: bad page signature at offset %d", off)
		}
		nsegs := int(raw[off+26])
		lacingOff := off + pageHeaderLen
		if len(raw)-lacingOff < nsegs {
			return nil, fmt.Errorf("oggopus: truncated segment table at offset %d", off)
		}
		lacing := raw[lacingOff : lacingOff+nsegs]
		segOff := lacingOff + nsegs
		for _, l := range lacing {
			if len(raw)-segOff < int(l) {
				return nil, fmt.Errorf("oggopus: truncated page payload at offset %d", segOff)
			}
			pending = append(pending, raw[segOff:segOff+int(l)]...)
			segOff += int(l)
			// A lacing value below 255 ends the packet.
			if l < 255 {
				pkts = append(pkts, pending)
				pending = nil
			}
		}
		off = segOff
	}
	return pkts, nil
}

// Decode reads an entire Ogg Opus stream and returns 48 kHz mono 16-bit
// little-endian PCM bytes.
func Decode(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("oggopus: read stream: %w", err)
	}

	_, hdr, err := oggreader.NewWith(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("oggopus: read header: %w", err)
	}

	channels := int(hdr.Channels)
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("oggopus: unsupported channel count %d", channels)
	}

	dec, err := opus.NewDecoder(Format.SampleRate(), channels)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	pkts, err := packets(raw)
	if err != nil {
		return nil, err
	}

	var data []byte
	for _, pkt := range pkts {
		if len(pkt) == 0 || bytes.HasPrefix(pkt, opusHead) || bytes.HasPrefix(pkt, opusTags) {
			continue
		}

		frame, err := dec.Decode(opus.Frame(pkt))
		if err != nil {
			return nil, fmt.Errorf("oggopus: %w", err)
		}
		if channels == 2 {
			frame = pcm.DownmixStereo(frame)
		}
		data = append(data, frame...)
	}

	// Drop the encoder priming samples declared in the header.
	if skip := Format.Bytes(int64(hdr.PreSkip)); int64(len(data)) > skip {
		data = data[skip:]
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("oggopus: stream contains no samples")
	}
	return data, nil
}

// Encode writes 48 kHz mono 16-bit little-endian PCM as an Ogg Opus stream.
// The final partial frame is zero-padded to the Opus frame boundary.
func Encode(w io.Writer, data []byte) error {
	ogg, err := oggwriter.NewWith(w, uint32(Format.SampleRate()), uint16(Format.Channels()))
	if err != nil {
		return fmt.Errorf("oggopus: write header: %w", err)
	}

	enc, err := opus.NewVoIPEncoder(Format.SampleRate(), Format.Channels())
	if err != nil {
		return err
	}
	defer enc.Close()

	frameSize := enc.FrameSize()
	samples := make([]int16, frameSize)

	var (
		seq uint16
		ts  uint32
	)
	for off := 0; off < len(data); off += frameSize * 2 {
		for i := range samples {
			samples[i] = 0
		}
		end := off + frameSize*2
		if end > len(data) {
			end = len(data)
		}
		for i := 0; i*2+1 < end-off; i++ {
			samples[i] = int16(data[off+i*2]) | int16(data[off+i*2+1])<<8
		}

		frame, err := enc.Encode(samples, frameSize)
		if err != nil {
			return fmt.Errorf("oggopus: %w", err)
		}
		pkt := &rtp.Packet{
			Header: rtp.Header{
				Version:        2,
				SequenceNumber: seq,
				Timestamp:      ts,
			},
			Payload: frame,
		}
		if err := ogg.WriteRTP(pkt); err != nil {
			return fmt.Errorf("oggopus: write packet: %w", err)
		}
		seq++
		ts += uint32(frameSize)
	}

	return ogg.Close()
}
