package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ararpy/arar"
	"github.com/katalvlaran/ararpy/internal/logger"
)

func newAgeCmd(ro *rootOptions) *cobra.Command {
	var (
		j, f       string
		decayError bool
	)

	cmd := &cobra.Command{
		Use:   "age",
		Short: "Compute an age from J and F",
		Long: `Evaluates t = ln(1 + J·F)/λ in units of the constants' age scalar (Ma by default).
With --decay-error the uncertainty of λ is included in the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := ro.loadConstants()
			if err != nil {
				return err
			}
			jv, err := parseOperand("j", j)
			if err != nil {
				return err
			}
			fv, err := parseOperand("f", f)
			if err != nil {
				return err
			}

			logger.Section("age")
			logger.Debug("J = %v", jv)
			logger.Debug("F = %v", fv)
			logger.Debug("λ = %v, decay error included: %t", c.LambdaK(), decayError)

			age := arar.AgeEquation(arar.FromQuantity(jv), arar.FromQuantity(fv), decayError, c)
			if age.Nominal() == 0 && fv.Nominal() != 0 {
				logger.Warn("age equation fell back to zero")
			}
			cmd.Printf("%.3f\n", age)

			return nil
		},
	}
	cmd.Flags().StringVar(&j, "j", "", `irradiation parameter, e.g. "0.01+/-0.00001"`)
	cmd.Flags().StringVar(&f, "f", "", `⁴⁰Ar*/³⁹Ar(K), e.g. "10+/-0.1"`)
	cmd.Flags().BoolVar(&decayError, "decay-error", false, "include the ⁴⁰K decay constant error")
	_ = cmd.MarkFlagRequired("j")
	_ = cmd.MarkFlagRequired("f")

	return cmd
}
