package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/midi"
	"github.com/jsphweid/harmonia/model"
	"github.com/jsphweid/harmonia/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	inspectMax      int
	inspectFromBeat int
	inspectMaxNotes int
)

func init() {
	inspectCmd.Flags().IntVar(&inspectMax, "max", 0, "most files to read from a directory, 0 for all")
	inspectCmd.Flags().IntVar(&inspectFromBeat, "from-beat", 0, "skip to this quarter note beat")
	inspectCmd.Flags().IntVar(&inspectMaxNotes, "max-notes", 0, "stop after this many note ons and offs per track, 0 for all")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid|dir>",
	Short: "Names the chords in MIDI files",
	Long: `Names the chords sounding in a MIDI file, or in every .mid file below
a directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := util.GatherAllMidiPaths(args[0], inspectMax)
		if err != nil {
			return err
		}
		for _, path := range paths {
			s, err := midi.ReadMidiFile(path)
			if err != nil {
				logrus.Warnf("skipping %v: %v", path, err)
				continue
			}
			if inspectFromBeat > 0 || inspectMaxNotes > 0 {
				if s, err = midi.Excerpt(s, midi.Ticks(s, inspectFromBeat), inspectMaxNotes); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			inspect(cmd.OutOrStdout(), midi.GetChords(s))
		}
		return nil
	},
}

// describe names the chord formed by keys, listing alternatives after the
// first, or "?" when no known chord matches.
func describe(keys model.Keys) string {
	found := chord.Identify(midi.Keys(keys))
	if len(found) == 0 {
		return "?"
	}
	names := make([]string, 0, len(found))
	for _, c := range found {
		names = append(names, c.Name())
	}
	return strings.Join(names, " / ")
}

func inspect(w io.Writer, chords []model.SoundingChord) {
	for _, c := range chords {
		fmt.Fprintf(w, "%10.3fs  %-16s %v\n", float64(c.Offset)/1e6, fmt.Sprint(c.Keys), describe(c.Keys))
	}
}
