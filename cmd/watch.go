package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	watchCourse   string
	watchInterval time.Duration
	watchDelay    time.Duration
)

func init() {
	watchCmd.Flags().StringVarP(&watchCourse, "course", "c", "", "course name or number (default: hardest)")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 250*time.Millisecond, "how often to check the file")
	watchCmd.Flags().DurationVar(&watchDelay, "delay", 500*time.Millisecond, "wait for edits to settle this long")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file.tja>",
	Short: "Re-analyses a chart whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return watch(ctx, cmd.OutOrStdout(), args[0])
	},
}

func modTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "watching %v", path)
	}
	return info.ModTime(), nil
}

func watch(ctx context.Context, w io.Writer, path string) error {
	last, err := modTime(path)
	if err != nil {
		return err
	}

	rerun := func() {
		fmt.Fprintf(w, "\n--- %v ---\n", time.Now().Format("15:04:05"))
		if err := analyseFile(w, path, watchCourse, formatText); err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		}
	}
	rerun()

	debounced := debounce.New(watchDelay)
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			mt, err := modTime(path)
			if err != nil {
				logger.Print(err)
				continue
			}
			if mt.Equal(last) {
				continue
			}
			last = mt
			logger.Printf("%v changed", path)
			debounced(rerun)
		}
	}
}
