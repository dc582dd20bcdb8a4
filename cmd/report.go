package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jsphweid/harmonia/constants"
	"github.com/jsphweid/harmonia/midi"
	"github.com/jsphweid/harmonia/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarizes exported MIDI files",
	Long:  `Summarizes the <uuid>.mid files export wrote to HARMONIA_OUT_DIR.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := analyzeExports(constants.GetOutDir())
		if err != nil {
			return err
		}
		r.print(cmd.OutOrStdout())
		return nil
	},
}

type exportsReport struct {
	numFiles  int64
	numBytes  int64
	numChords int64
	// chord name to number of bars it fills
	chordCounts map[string]int64
}

var exportFilename = regexp.MustCompile("^[0-9a-fA-F]{8}-([0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}.mid$")

func analyzeExports(dir string) (exportsReport, error) {
	report := exportsReport{chordCounts: make(map[string]int64)}

	files, err := os.ReadDir(dir)
	if err != nil {
		return report, errors.Wrapf(err, "could not read %v", dir)
	}

	for _, file := range files {
		if file.IsDir() || !exportFilename.MatchString(file.Name()) {
			continue
		}
		path := filepath.Join(dir, file.Name())
		info, err := file.Info()
		if err != nil {
			return report, errors.Wrapf(err, "could not stat %v", path)
		}
		s, err := midi.ReadMidiFile(path)
		if err != nil {
			return report, err
		}

		report.numFiles += 1
		report.numBytes += info.Size()
		for _, c := range midi.GetChords(s) {
			report.numChords += 1
			report.chordCounts[describe(c.Keys)] += 1
		}
	}
	return report, nil
}

func (r exportsReport) print(w io.Writer) {
	fmt.Fprintf(w, "files:  %d\n", r.numFiles)
	fmt.Fprintf(w, "bytes:  %d\n", r.numBytes)
	fmt.Fprintf(w, "chords: %d\n", r.numChords)
	for _, name := range util.GetKeys(r.chordCounts) {
		fmt.Fprintf(w, "  %-24s %d\n", name, r.chordCounts[name])
	}
}
