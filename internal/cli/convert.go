package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConvertCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input> <output.wav>",
		Short: "Convert an audio file to mono 16 kHz PCM-16 WAV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			convertFn := app.convertFn
			if convertFn == nil {
				convertFn = app.convertAudio
			}

			if err := convertFn(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), args[1])
			return nil
		},
	}

	bindLoggingFlags(cmd, app)
	bindProgressFlag(cmd, app)

	return cmd
}
