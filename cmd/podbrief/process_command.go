package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"podbrief/internal/pipeline"
)

func newProcessCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "process <source-url-or-key>",
		Short: "Run the full pipeline for one source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, *configFlag)
			if err != nil {
				return err
			}
			defer a.close()

			sink := func(ev pipeline.Event) {
				if ev.Error {
					fmt.Fprintf(os.Stderr, "[%3d%%] %s: %s\n", ev.Progress, ev.Stage, ev.ErrorMessage)
					return
				}
				fmt.Printf("[%3d%%] %s: %s\n", ev.Progress, ev.Stage, ev.Message)
			}

			result, err := a.pipeline.Run(ctx, args[0], sink)
			if err != nil {
				return err
			}

			fmt.Printf("\nSummary audio: %s\n", result.SummaryAudioPath)
			fmt.Printf("Transcript words: %d, summary words: %d", result.TranscriptWords, result.SummaryWords)
			if result.WasCached {
				fmt.Printf(" (served from cache)")
			}
			fmt.Printf("\nElapsed: %s\n", result.Elapsed.Round(10*time.Millisecond))
			return nil
		},
	}
}
