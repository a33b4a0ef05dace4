package audio

import (
	"fmt"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ReadPCM16 loads the entire sample buffer of a WAV file into memory and
// returns it as 16-bit signed samples along with the sample rate. The file
// is assumed to carry a single channel; multi-channel data is returned
// interleaved as stored.
func ReadPCM16(path string) ([]int16, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid wav file")
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("read pcm buffer: %w", err)
	}
	if buf.Format == nil || buf.Format.SampleRate <= 0 {
		return nil, 0, fmt.Errorf("wav file has no sample rate")
	}

	return pcmToInt16(buf), buf.Format.SampleRate, nil
}

func pcmToInt16(buf *gaudio.IntBuffer) []int16 {
	out := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		out[i] = int16(s)
	}
	return out
}
