package cmd

import (
	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/format"
	"github.com/jsphweid/harmonia/key"
	"github.com/jsphweid/harmonia/progression"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const progressionTemplate = `{{ .Progression.Name | default "custom" }} in {{ .Key.Name }}: {{ .Progression }}
{{ range .Chords }}{{ .Name | printf "%-9s" }}{{ notes .Notes }}
{{ end }}`

type evaluation struct {
	Key         key.Key
	Progression progression.Progression
	Chords      []chord.Chord
}

func evaluate(k key.Key, p progression.Progression) evaluation {
	return evaluation{Key: k, Progression: p, Chords: p.Evaluate(k)}
}

var (
	progressionFormat string
	progressionName   string
	progressionSteps  string
	progressionFile   string
	progressionList   bool
)

func addProgressionFlags(cmd *cobra.Command, name, steps, file *string) {
	cmd.Flags().StringVar(name, "name", "", "built-in progression, or template name within --file")
	cmd.Flags().StringVar(steps, "steps", "", `roman numeral steps, e.g. "I-V-vi-IV"`)
	cmd.Flags().StringVar(file, "file", "", "YAML file of progression templates")
}

func init() {
	addProgressionFlags(progressionCmd, &progressionName, &progressionSteps, &progressionFile)
	progressionCmd.Flags().StringVar(&progressionFormat, "format", progressionTemplate, "template executed against each evaluated progression")
	progressionCmd.Flags().BoolVar(&progressionList, "list", false, "print the built-in progressions as a template file")
	rootCmd.AddCommand(progressionCmd)
}

var progressionCmd = &cobra.Command{
	Use:   "progression <tonic> [mode]",
	Short: "Evaluates a chord progression in a key",
	Long: `Evaluates a chord progression in a key. Built-in progressions are
one-of-us (I-V-vi-IV), canon (I-V-vi-iii-IV-I-IV-V) and royal-road
(IVmaj7-V7-iiim7-vi).

  harmonia progression C --name canon
  harmonia progression A minor --steps "i-VI-III-VII"
  harmonia progression Eb --file templates.yaml
  harmonia progression --list > templates.yaml`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if progressionList {
			var ps []progression.Progression
			for _, name := range progression.Names() {
				p, _ := progression.Named(name)
				ps = append(ps, p)
			}
			return progression.WriteTemplates(cmd.OutOrStdout(), ps)
		}
		if len(args) == 0 {
			return errors.New("need a tonic")
		}

		k, err := buildKey(args)
		if err != nil {
			return err
		}
		ps, err := pickProgressions(progressionName, progressionSteps, progressionFile)
		if err != nil {
			return err
		}
		for _, p := range ps {
			if err := format.Render(cmd.OutOrStdout(), progressionFormat, evaluate(k, p)); err != nil {
				return err
			}
		}
		return nil
	},
}
