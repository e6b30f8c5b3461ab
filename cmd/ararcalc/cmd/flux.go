package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ararpy/arar"
	"github.com/katalvlaran/ararpy/internal/logger"
)

func newFluxCmd(ro *rootOptions) *cobra.Command {
	var f, age string

	cmd := &cobra.Command{
		Use:   "flux",
		Short: "Compute J from F and a known age",
		Long:  `Inverts the age equation: J = (e^{λt} − 1)/F, with t in units of the constants' age scalar.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := ro.loadConstants()
			if err != nil {
				return err
			}
			fv, err := parseOperand("f", f)
			if err != nil {
				return err
			}
			tv, err := parseOperand("age", age)
			if err != nil {
				return err
			}

			logger.Section("flux")
			logger.Debug("F = %v, age = %v", fv, tv)
			if fv.Nominal() == 0 {
				logger.Warn("F is zero; J falls back to 1")
			}

			cmd.Printf("%.6f\n", arar.CalculateFlux(arar.FromQuantity(fv), arar.FromQuantity(tv), c))

			return nil
		},
	}
	cmd.Flags().StringVar(&f, "f", "", `⁴⁰Ar*/³⁹Ar(K) of the standard, e.g. "10+/-0.1"`)
	cmd.Flags().StringVar(&age, "age", "", `known age of the standard, e.g. "28.201+/-0.023"`)
	_ = cmd.MarkFlagRequired("f")
	_ = cmd.MarkFlagRequired("age")

	return cmd
}
