package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ararpy/internal/logger"
	"github.com/katalvlaran/ararpy/plateau"
)

func newPlateauCmd() *cobra.Command {
	var (
		ages, errs, k39 []float64
		method, kind    string
		sigma, minFrac  float64
		minSteps        int
	)

	def := plateau.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "plateau",
		Short: "Find the plateau of a step-heating spectrum",
		Long: `Searches the longest run of contiguous concordant steps that carries enough ³⁹Ar
and averages its ages.

Methods: fleck1977 (pairwise overlap), mahon1996 (MSWD acceptance band).
Kinds:   inverse_variance, vol_fraction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := plateau.ParseMethod(method)
			if err != nil {
				return err
			}
			k, err := plateau.ParseKind(kind)
			if err != nil {
				return err
			}
			switch {
			case !(sigma > 0):
				return plateau.ErrBadOverlapSigma
			case !(minFrac >= 0 && minFrac <= 1):
				return plateau.ErrBadMinFraction
			case minSteps < 1:
				return plateau.ErrBadMinSteps
			}

			logger.Section("plateau")
			logger.Debug("%d steps, method %s, %g σ, min fraction %g, min steps %d, %s",
				len(ages), m, sigma, minFrac, minSteps, k)

			res, ok, err := plateau.CalculateAge(ages, errs, k39,
				plateau.WithMethod(m),
				plateau.WithOverlapSigma(sigma),
				plateau.WithMinFraction(minFrac),
				plateau.WithMinSteps(minSteps),
				plateau.WithKind(k),
			)
			if err != nil {
				return err
			}
			if !ok {
				cmd.Println("no plateau")

				return nil
			}
			cmd.Printf("plateau steps %v: %.3f ± %.3f (%.1f%% ³⁹Ar, MSWD %.2f, n=%d)\n",
				res.Span, res.Age, res.Error, res.Fraction*100, res.MSWD, res.N)

			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&ages, "ages", nil, "step ages, comma separated")
	cmd.Flags().Float64SliceVar(&errs, "errors", nil, "1σ errors of the ages")
	cmd.Flags().Float64SliceVar(&k39, "k39", nil, "³⁹Ar(K) released by each step")
	cmd.Flags().StringVar(&method, "method", def.Method.String(), "acceptance rule")
	cmd.Flags().StringVar(&kind, "kind", def.Kind.String(), "averaging of the plateau ages")
	cmd.Flags().Float64Var(&sigma, "sigma", def.OverlapSigma, "overlap confidence in σ")
	cmd.Flags().Float64Var(&minFrac, "min-fraction", def.MinFraction, "minimum ³⁹Ar fraction of the plateau")
	cmd.Flags().IntVar(&minSteps, "min-steps", def.MinSteps, "minimum number of steps")
	_ = cmd.MarkFlagRequired("ages")
	_ = cmd.MarkFlagRequired("errors")
	_ = cmd.MarkFlagRequired("k39")

	return cmd
}
