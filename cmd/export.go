package cmd

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/harmonia/constants"
	"github.com/jsphweid/harmonia/midi"
	"github.com/jsphweid/harmonia/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	exportName  string
	exportSteps string
	exportFile  string
	exportOut   string
	exportOpts  = midi.DefaultExportOptions()
)

func init() {
	addProgressionFlags(exportCmd, &exportName, &exportSteps, &exportFile)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path, defaults to <uuid>.mid in HARMONIA_OUT_DIR")
	exportCmd.Flags().IntVar(&exportOpts.Octave, "octave", exportOpts.Octave, "octave of each chord's root, 4 holds middle C")
	exportCmd.Flags().Float64Var(&exportOpts.Tempo, "tempo", exportOpts.Tempo, "beats per minute")
	exportCmd.Flags().Uint8Var(&exportOpts.Beats, "beats", exportOpts.Beats, "beats each chord is held for")
	exportCmd.Flags().Uint8Var(&exportOpts.Velocity, "velocity", exportOpts.Velocity, "note on velocity")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <tonic> [mode]",
	Short: "Writes a progression to a MIDI file",
	Long: `Writes a progression to a Standard MIDI File, one chord per bar in
close position.

  harmonia export C --name royal-road --tempo 90
  harmonia export D minor --steps "i-iv-v-i" -o cadence.mid`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := buildKey(args)
		if err != nil {
			return err
		}
		ps, err := pickProgressions(exportName, exportSteps, exportFile)
		if err != nil {
			return err
		}
		if exportOut != "" && len(ps) > 1 {
			return errors.New("--out needs a single progression, pick one with --name")
		}

		for _, p := range ps {
			path, err := export(exportOut, evaluate(k, p))
			if err != nil {
				return err
			}
			logrus.Infof("wrote %v (%v in %v)", path, p.Name, k.Name())
		}
		return nil
	},
}

// export writes e to path, or to a fresh <uuid>.mid in the output directory
// when path is empty, and returns where it went.
func export(path string, e evaluation) (string, error) {
	if path == "" {
		dir := constants.GetOutDir()
		if err := util.EnsureDir(dir); err != nil {
			return "", err
		}
		path = filepath.Join(dir, uuid.New().String()+".mid")
	}

	opts := exportOpts
	opts.Name = e.Progression.Name + " in " + e.Key.Name()
	if err := midi.WriteProgressionFile(path, e.Chords, opts); err != nil {
		return "", err
	}
	return path, nil
}
