package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veteranbv/audioprep/internal/fsutil"
)

type prepareOptions struct {
	inputDir     string
	outputDir    string
	processedDir string
}

func newPrepareCmd(app *appState) *cobra.Command {
	opts := &prepareOptions{}

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Convert every .m4a recording in a directory and plot its waveforms",
		Long: "Scan a directory for .m4a recordings, convert each to mono 16 kHz WAV, " +
			"render a waveform image, and move the original into the processed directory. " +
			"A recording that fails to convert is skipped and counted, not fatal.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runPrepare(cmd.Context(), cmd.OutOrStdout(), *opts)
		},
	}

	bindLoggingFlags(cmd, app)
	bindProgressFlag(cmd, app)
	cmd.Flags().StringVar(&opts.inputDir, "input-dir", "./audio/input", "Directory scanned for .m4a recordings")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "./output", "Directory for converted WAVs and waveform images")
	cmd.Flags().StringVar(&opts.processedDir, "processed-dir", "./audio/processed", "Directory successfully handled recordings are moved into")

	return cmd
}

func (a *appState) runPrepare(ctx context.Context, out io.Writer, opts prepareOptions) error {
	convertFn := a.convertFn
	if convertFn == nil {
		convertFn = a.convertAudio
	}
	durationFn := a.durationFn
	if durationFn == nil {
		durationFn = a.audioDuration
	}
	plotFn := a.plotFn
	if plotFn == nil {
		plotFn = a.plotWaveform
	}

	wavDir := filepath.Join(opts.outputDir, "wav")
	figureDir := filepath.Join(opts.outputDir, "figures")
	for _, dir := range []string{opts.inputDir, opts.processedDir, wavDir, figureDir} {
		if err := fsutil.EnsureDir(a.log(), dir); err != nil {
			return err
		}
	}

	recordings, err := filepath.Glob(filepath.Join(opts.inputDir, "*.m4a"))
	if err != nil {
		return fmt.Errorf("scan input directory: %w", err)
	}
	sort.Strings(recordings)

	if len(recordings) == 0 {
		a.log().Info("no recordings found", zap.String("input_dir", opts.inputDir))
		fmt.Fprintln(out, "No .m4a recordings found.")
		return nil
	}

	advance, stopProgress := startFileProgress(a.progressEnabled(), "Preparing recordings", len(recordings))
	defer stopProgress()

	var (
		processed    int
		failures     int
		totalSeconds float64
		totalBytes   int64
	)
	started := time.Now()

	for _, src := range recordings {
		if err := ctx.Err(); err != nil {
			return err
		}

		src, err := removeSpaces(src)
		if err != nil {
			a.log().Error("skipping recording", zap.String("input", src), zap.Error(err))
			failures++
			advance()
			continue
		}

		base := fsutil.SanitizeFilename(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)))
		wavPath := filepath.Join(wavDir, base+".wav")

		a.log().Info("processing recording", zap.String("input", src))
		if err := convertFn(ctx, src, wavPath); err != nil {
			a.log().Error("skipping recording after failed conversion", zap.String("input", src), zap.Error(err))
			failures++
			advance()
			continue
		}

		if err := plotFn(wavPath, figureDir, base+"_waveform.png"); err != nil {
			a.log().Warn("waveform plot failed", zap.String("wav", wavPath), zap.Error(err))
		}

		totalSeconds += durationFn(wavPath)
		if info, err := os.Stat(src); err == nil {
			totalBytes += info.Size()
		}

		if err := os.Rename(src, filepath.Join(opts.processedDir, filepath.Base(src))); err != nil {
			a.log().Warn("failed to move recording to processed directory", zap.String("input", src), zap.Error(err))
		}

		processed++
		advance()
	}

	stopProgress()

	fmt.Fprintf(out, "Processed %d recording(s), %d failure(s) in %s\n",
		processed, failures, fsutil.FormatSeconds(time.Since(started).Seconds()))
	fmt.Fprintf(out, "Total audio length: %s\n", fsutil.FormatSeconds(totalSeconds))
	fmt.Fprintf(out, "Total input size: %.2f MB\n", float64(totalBytes)/(1024*1024))
	return nil
}

// removeSpaces renames the file so its base name carries underscores instead
// of spaces, keeping downstream tool invocations quoting-free.
func removeSpaces(path string) (string, error) {
	base := filepath.Base(path)
	renamed := strings.ReplaceAll(base, " ", "_")
	if renamed == base {
		return path, nil
	}

	dst := filepath.Join(filepath.Dir(path), renamed)
	if err := os.Rename(path, dst); err != nil {
		return path, fmt.Errorf("rename recording: %w", err)
	}
	return dst, nil
}
