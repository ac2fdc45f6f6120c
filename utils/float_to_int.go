package utils

// Float32ToInt16 quantizes a normalized sample to signed 16-bit PCM.
//
// The scale is asymmetric: negative values use the full 32768 range
// while non-negative values use 32767, so -1.0 maps to -32768 and
// +1.0 maps to 32767 without overflowing int16.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}
	return int16(x * 32767.0)
}

// QuantizePCM16 converts a buffer of normalized samples to 16-bit PCM
// using Float32ToInt16. The WAV writer and the MP3 encode path must
// quantize identically, so both go through this function.
func QuantizePCM16(samples []float32) []int16 {
	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = Float32ToInt16(s)
	}
	return pcm
}
