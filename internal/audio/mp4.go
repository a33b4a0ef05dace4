package audio

import (
	"fmt"
	"os"

	"github.com/abema/go-mp4"
)

// mp4Duration reads the duration an MPEG-4 container reports in its movie
// header, without touching the sample data.
func mp4Duration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open m4a: %w", err)
	}
	defer f.Close()

	info, err := mp4.Probe(f)
	if err != nil {
		return 0, fmt.Errorf("probe m4a: %w", err)
	}
	if info.Timescale == 0 {
		return 0, fmt.Errorf("m4a movie header has no timescale")
	}

	return float64(info.Duration) / float64(info.Timescale), nil
}
