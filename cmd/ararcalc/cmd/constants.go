package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ararpy/constants"
)

func newConstantsCmd(ro *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "constants",
		Short: "Print the effective constants set",
		Long:  `Prints the built-in constants, or those loaded with --constants, as YAML or TOML.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := constants.FormatFromExtension("." + format)
			if err != nil {
				return err
			}
			c, err := ro.loadConstants()
			if err != nil {
				return err
			}
			data, err := constants.Encode(c.Config(), f)
			if err != nil {
				return err
			}
			cmd.Print(string(data))

			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or toml")

	return cmd
}
