package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func newWaveformCmd(app *appState) *cobra.Command {
	var outDir string
	var filename string

	cmd := &cobra.Command{
		Use:   "waveform <input.wav>",
		Short: "Render a waveform plot of a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plotFn := app.plotFn
			if plotFn == nil {
				plotFn = app.plotWaveform
			}

			name := filename
			if name == "" {
				name = waveformFilename(args[0])
			}

			if err := plotFn(args[0], outDir, name); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(outDir, name))
			return nil
		},
	}

	bindLoggingFlags(cmd, app)
	bindProgressFlag(cmd, app)
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory for the waveform image")
	cmd.Flags().StringVar(&filename, "filename", "", "Image filename (defaults to <input>_waveform.png)")

	return cmd
}

func waveformFilename(wavPath string) string {
	base := strings.TrimSuffix(filepath.Base(wavPath), filepath.Ext(wavPath))
	return base + "_waveform.png"
}
