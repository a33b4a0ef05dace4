// Package audio reads duration and sample data out of local audio files.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"go.uber.org/zap"

	"github.com/veteranbv/audioprep/internal/fsutil"
)

// Duration returns the length of the audio file at path in seconds. The probe
// method is chosen by filename extension, case-insensitively: .wav files are
// decoded for their frame count and rate, .m4a files report the duration
// stored in the container header. Any other extension, and any open or parse
// failure on either path, is logged and degrades to 0. Callers must treat 0
// as "duration unknown", never as a measured zero-length file.
func Duration(logger *zap.Logger, path string) float64 {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch {
	case strings.EqualFold(filepath.Ext(path), ".wav"):
		return fsutil.LogAndZero(logger, "read wav duration", path, func() (float64, error) {
			return wavDuration(path)
		})
	case strings.EqualFold(filepath.Ext(path), ".m4a"):
		return fsutil.LogAndZero(logger, "read m4a duration", path, func() (float64, error) {
			return mp4Duration(path)
		})
	default:
		logger.Error("unsupported audio format", zap.String("path", path))
		return 0
	}
}

func wavDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return 0, fmt.Errorf("invalid wav file")
	}

	dur, err := decoder.Duration()
	if err != nil {
		return 0, fmt.Errorf("compute wav duration: %w", err)
	}
	return dur.Seconds(), nil
}
