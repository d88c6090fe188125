package pcm

// ToFloat64 converts 16-bit little-endian PCM bytes to float64 samples
// normalized to [-1, 1). Trailing odd bytes are ignored.
func ToFloat64(data []byte) []float64 {
	n := len(data) / 2
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		s := int16(data[i*2]) | int16(data[i*2+1])<<8
		samples[i] = float64(s) / 32768.0
	}
	return samples
}

// FromFloat64 converts float64 samples in [-1, 1] to 16-bit little-endian
// PCM bytes. Samples outside the range are clipped.
func FromFloat64(samples []float64) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		var v int16
		switch {
		case s >= 1.0:
			v = 32767
		case s <= -1.0:
			v = -32768
		default:
			v = int16(s * 32767.0)
		}
		data[i*2] = byte(v)
		data[i*2+1] = byte(v >> 8)
	}
	return data
}

// DownmixStereo averages interleaved stereo int16 samples into mono.
// The input length must be a multiple of 4 bytes (one stereo frame);
// trailing partial frames are dropped.
func DownmixStereo(data []byte) []byte {
	frames := len(data) / 4
	out := make([]byte, frames*2)
	for i := 0; i < frames; i++ {
		l := int16(data[i*4]) | int16(data[i*4+1])<<8
		r := int16(data[i*4+2]) | int16(data[i*4+3])<<8
		m := int16((int32(l) + int32(r)) / 2)
		out[i*2] = byte(m)
		out[i*2+1] = byte(m >> 8)
	}
	return out
}
