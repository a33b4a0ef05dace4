package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDurationCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duration <audio-file>",
		Short: "Print the length of an audio file in seconds",
		Long: "Print the length of a .wav or .m4a file in seconds. " +
			"Unsupported or unreadable files print 0, meaning the duration is unknown.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			durationFn := app.durationFn
			if durationFn == nil {
				durationFn = app.audioDuration
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%.3f\n", durationFn(args[0]))
			return nil
		},
	}

	bindLoggingFlags(cmd, app)

	return cmd
}
