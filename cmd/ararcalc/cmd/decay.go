package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ararpy/arar"
	"github.com/katalvlaran/ararpy/internal/logger"
)

func newDecayFactorCmd() *cobra.Command {
	var (
		dc       float64
		segments []string
	)

	cmd := &cobra.Command{
		Use:   "decay-factor",
		Short: "Decay correction of a segmented irradiation",
		Long: `Computes Σ pᵢtᵢ / Σ pᵢ(1 − e^{−λtᵢ})/(λ·e^{λδtᵢ}) for the given decay constant.

Each --segment is "power,duration,elapsed" in units consistent with --dc.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			segs := make([]arar.Segment, 0, len(segments))
			for _, s := range segments {
				seg, err := parseSegment(s)
				if err != nil {
					return err
				}
				segs = append(segs, seg)
			}

			logger.Section("decay factor")
			logger.Debug("λ = %g, %d segment(s)", dc, len(segs))
			for i, s := range segs {
				logger.Debug("segment %d: p=%g t=%g δt=%g", i, s.Power, s.Duration, s.Elapsed)
			}

			cmd.Printf("%.6f\n", arar.CalculateDecayFactor(dc, segs))

			return nil
		},
	}
	cmd.Flags().Float64Var(&dc, "dc", 0, "decay constant of ³⁷Ar or ³⁹Ar")
	cmd.Flags().StringArrayVar(&segments, "segment", nil, `irradiation segment "power,duration,elapsed" (repeatable)`)
	_ = cmd.MarkFlagRequired("dc")

	return cmd
}

func parseSegment(s string) (arar.Segment, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return arar.Segment{}, fmt.Errorf("invalid --segment %q: want power,duration,elapsed", s)
	}
	var v [3]float64
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return arar.Segment{}, fmt.Errorf("invalid --segment %q: %w", s, err)
		}
		v[i] = x
	}

	return arar.Segment{Power: v[0], Duration: v[1], Elapsed: v[2]}, nil
}
