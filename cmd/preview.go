package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jsphweid/tjadex/midi"
	"github.com/jsphweid/tjadex/sample"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	previewBeat  float64
	previewNotes int
)

func init() {
	previewCmd.Flags().Float64VarP(&previewBeat, "beat", "b", 0, "beat to start the preview at")
	previewCmd.Flags().IntVar(&previewNotes, "notes", 64, "number of notes in the preview")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <file.mid>",
	Short: "Cuts a preview out of an exported MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return preview(args[0])
	},
}

func preview(path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	res := sample.Create(s, uint64(midi.BeatToTicks(previewBeat)), previewNotes)

	out := strings.TrimSuffix(path, ".mid") + ".preview.mid"
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "Couldn't open file: "+out)
	}
	defer f.Close()

	if _, err := res.WriteTo(f); err != nil {
		return errors.Wrap(err, "Write failed for file: "+out)
	}
	fmt.Printf("Wrote %v\n", out)
	return nil
}
