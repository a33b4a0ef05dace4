package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/veteranbv/audioprep/internal/audio"
	"github.com/veteranbv/audioprep/internal/logging"
	"github.com/veteranbv/audioprep/internal/transcode"
	"github.com/veteranbv/audioprep/internal/version"
	"github.com/veteranbv/audioprep/internal/waveform"
)

type appState struct {
	verbose    bool
	jsonLogs   bool
	noProgress bool

	logger *zap.Logger

	convertFn  func(ctx context.Context, input, output string) error
	durationFn func(path string) float64
	plotFn     func(wavPath, outDir, filename string) error
}

func NewRootCmd() *cobra.Command {
	app := &appState{}
	app.convertFn = app.convertAudio
	app.durationFn = app.audioDuration
	app.plotFn = app.plotWaveform

	cmd := &cobra.Command{
		Use:           "audioprep",
		Short:         "Convert, measure, and plot audio recordings",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Resolve(),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := logging.New(logging.Options{Verbose: app.verbose, JSON: app.jsonLogs})
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			app.logger = logger
			return nil
		},
	}

	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	bindLoggingFlags(cmd, app)
	bindProgressFlag(cmd, app)

	cmd.AddCommand(newConvertCmd(app))
	cmd.AddCommand(newDurationCmd(app))
	cmd.AddCommand(newWaveformCmd(app))
	cmd.AddCommand(newPrepareCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func bindLoggingFlags(cmd *cobra.Command, app *appState) {
	cmd.Flags().BoolVar(&app.verbose, "verbose", app.verbose, "Enable verbose logs")
	cmd.Flags().BoolVar(&app.jsonLogs, "json", app.jsonLogs, "Enable JSON logging")
}

func bindProgressFlag(cmd *cobra.Command, app *appState) {
	cmd.Flags().BoolVar(&app.noProgress, "no-progress", app.noProgress, "Disable progress indicators")
}

func (a *appState) convertAudio(ctx context.Context, input, output string) error {
	input = filepath.Clean(input)
	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("input audio file not found: %w", err)
	}

	stopSpinner := startSpinner(a.progressEnabled(), "Converting")
	defer stopSpinner()

	return transcode.ToWAV(ctx, a.log(), input, output)
}

func (a *appState) audioDuration(path string) float64 {
	return audio.Duration(a.log(), path)
}

func (a *appState) plotWaveform(wavPath, outDir, filename string) error {
	stopSpinner := startSpinner(a.progressEnabled(), "Plotting")
	defer stopSpinner()

	return waveform.Plot(a.log(), wavPath, outDir, filename)
}

func (a *appState) log() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}

func (a *appState) progressEnabled() bool {
	if a.noProgress {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}
