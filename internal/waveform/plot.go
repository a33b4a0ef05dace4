// Package waveform renders amplitude-over-time plots of WAV files.
package waveform

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/veteranbv/audioprep/internal/audio"
	"github.com/veteranbv/audioprep/internal/fsutil"
)

// Plot reads the full sample buffer of the WAV file at wavPath and saves a
// line plot of amplitude against time as outDir/filename, creating outDir if
// needed. Each sample gets one time value at i/rate seconds. Failures are
// logged and returned; an image file is only written on success.
func Plot(logger *zap.Logger, wavPath, outDir, filename string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	return fsutil.LogFailure(logger, "plot waveform", wavPath, func() error {
		samples, rate, err := audio.ReadPCM16(wavPath)
		if err != nil {
			return err
		}

		pts := make(plotter.XYs, len(samples))
		for i, s := range samples {
			pts[i].X = float64(i) / float64(rate)
			pts[i].Y = float64(s)
		}

		p := plot.New()
		p.Title.Text = "Waveform of " + filepath.Base(wavPath)
		p.X.Label.Text = "Time [s]"
		p.Y.Label.Text = "Amplitude"

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("build waveform line: %w", err)
		}
		p.Add(line)

		if err := fsutil.EnsureDir(logger, outDir); err != nil {
			return err
		}

		target := filepath.Join(outDir, filename)
		if err := p.Save(10*vg.Inch, 4*vg.Inch, target); err != nil {
			return fmt.Errorf("save waveform plot: %w", err)
		}

		logger.Info("waveform plot saved", zap.String("path", target))
		return nil
	})
}
