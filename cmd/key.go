package cmd

import (
	"github.com/jsphweid/harmonia/format"
	"github.com/spf13/cobra"
)

const keyTemplate = `{{ .Name }}
{{ notes .AsSequence }}
`

var keyFormat string

func init() {
	keyCmd.Flags().StringVar(&keyFormat, "format", keyTemplate, "template executed against the key")
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key <tonic> [mode]",
	Short: "Spells the seven degrees of a key",
	Long: `Spells the seven degrees of a major or natural minor key.

  harmonia key Db
  harmonia key F# minor`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := buildKey(args)
		if err != nil {
			return err
		}
		return format.Render(cmd.OutOrStdout(), keyFormat, k)
	},
}
