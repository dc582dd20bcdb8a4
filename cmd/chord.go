package cmd

import (
	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/format"
	"github.com/jsphweid/harmonia/note"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const chordTemplate = `{{ .Name }}
{{ notes .Notes }}
`

var (
	chordFormat string
	chordSus2   bool
	chordSus4   bool
	chordOmit   []int
)

func init() {
	chordCmd.Flags().StringVar(&chordFormat, "format", chordTemplate, "template executed against the chord")
	chordCmd.Flags().BoolVar(&chordSus2, "sus2", false, "replace the third with a major second")
	chordCmd.Flags().BoolVar(&chordSus4, "sus4", false, "replace the third with a perfect fourth")
	chordCmd.Flags().IntSliceVar(&chordOmit, "omit", nil, "degrees to omit (1, 3 or 5), applied after sus")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root> [quality]",
	Short: "Spells a chord",
	Long: `Spells a chord from a root and a quality suffix such as m, 7, maj7 or
m7b5. No quality means a major triad.

  harmonia chord C
  harmonia chord F# m7
  harmonia chord G 7 --sus4 --omit 5`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		q := chord.Major
		if len(args) > 1 {
			if q, err = chord.ParseQuality(args[1]); err != nil {
				return err
			}
		}

		var sus int
		switch {
		case chordSus2 && chordSus4:
			return errors.New("--sus2 and --sus4 are exclusive")
		case chordSus2:
			sus = 2
		case chordSus4:
			sus = 4
		}

		c, err := modify(chord.Build(root, q), sus, chordOmit)
		if err != nil {
			return err
		}
		return format.Render(cmd.OutOrStdout(), chordFormat, c)
	},
}
