// Package transcode converts arbitrary audio files into the normalized WAV
// layout the rest of the pipeline expects: mono, 16 kHz, 16-bit signed
// little-endian PCM. The heavy lifting is delegated to ffmpeg.
package transcode

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// OutputSampleRate is the sample rate of every converted file, in Hz.
	OutputSampleRate = 16000
	// OutputChannels is the channel count of every converted file.
	OutputChannels = 1
)

const ffmpegBin = "ffmpeg"

// Available reports whether ffmpeg can be found on PATH.
func Available() bool {
	_, err := exec.LookPath(ffmpegBin)
	return err == nil
}

// ToWAV converts the audio file at input into a mono 16 kHz PCM-16 WAV file
// at output. The output's parent directory is created if missing. On a
// non-zero ffmpeg exit the captured stderr is logged and the failure is
// returned to the caller; partial output, if any, is left in place.
func ToWAV(ctx context.Context, logger *zap.Logger, input, output string) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if input == "" {
		return fmt.Errorf("input path is required")
	}
	if output == "" {
		return fmt.Errorf("output path is required")
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, ffmpegBin, conversionArgs(input, output)...)

	var stderr bytes.Buffer
	cmd.Stdout = nil
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		logger.Error("audio conversion failed",
			zap.String("input", input),
			zap.String("output", output),
			zap.String("ffmpeg_stderr", diag),
			zap.Error(err),
		)
		if diag != "" {
			return fmt.Errorf("convert %s to wav: %w (%s)", input, err, diag)
		}
		return fmt.Errorf("convert %s to wav: %w", input, err)
	}

	logger.Info("converted audio to wav", zap.String("input", input), zap.String("output", output))
	return nil
}

func conversionArgs(input, output string) []string {
	return []string{
		"-nostdin", "-hide_banner", "-loglevel", "error", "-y",
		"-i", input,
		"-acodec", "pcm_s16le",
		"-ac", strconv.Itoa(OutputChannels),
		"-ar", strconv.Itoa(OutputSampleRate),
		output,
	}
}
