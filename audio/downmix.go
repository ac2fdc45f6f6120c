package audio

// DownmixRange collapses the [start, end) segment of a clip into a
// single mono buffer of length end-start.
//
// A single-channel clip is copied directly, bit-identical to the
// source slice. Multi-channel clips are averaged per sample frame,
// dividing by the true channel count so that identical channels mix
// to exactly the source value. No windowing, no fade.
//
// Callers are responsible for start/end being within [0, Frames()]
// with end >= start.
func DownmixRange(clip *Clip, start, end int) []float32 {
	length := end - start
	mono := make([]float32, length)

	if len(clip.Channels) == 1 {
		copy(mono, clip.Channels[0][start:end])
		return mono
	}

	channels := clip.Channels
	count := float32(len(channels))

	switch len(channels) {
	case 2: // Stereo (most common)
		left, right := channels[0], channels[1]
		for i := 0; i < length; i++ {
			mono[i] = (left[start+i] + right[start+i]) * 0.5
		}
	default: // Generic path
		for i := 0; i < length; i++ {
			sum := float32(0)
			for _, ch := range channels {
				sum += ch[start+i]
			}
			mono[i] = sum / count
		}
	}

	return mono
}
