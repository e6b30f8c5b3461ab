// Package cmd implements the ararcalc command tree.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ararpy/arar"
	"github.com/katalvlaran/ararpy/constants"
	"github.com/katalvlaran/ararpy/internal/logger"
	"github.com/katalvlaran/ararpy/ufloat"
)

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose       bool
	constantsFile string
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}
	root := &cobra.Command{
		Use:   "ararcalc",
		Short: "⁴⁰Ar/³⁹Ar age calculator",
		Long: `ararcalc evaluates the ⁴⁰Ar/³⁹Ar dating equations from the command line.

Uncertain inputs are written as "value+/-error" (or "value±error").

Commands:
  age           - age from J and F
  flux          - J from F and a known age
  decay-factor  - ³⁷Ar/³⁹Ar decay correction of a segmented irradiation
  plateau       - plateau search over step-heating ages
  constants     - print the effective constants set`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.SetVerbose(ro.verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&ro.verbose, "verbose", "v", false, "print inputs and intermediate values to stderr")
	root.PersistentFlags().StringVar(&ro.constantsFile, "constants", "", "YAML or TOML constants file (default: built-in set)")

	root.AddCommand(
		newAgeCmd(ro),
		newFluxCmd(ro),
		newDecayFactorCmd(),
		newPlateauCmd(),
		newConstantsCmd(ro),
	)

	return root
}

// Execute runs the ararcalc command tree.
func Execute() error {
	return newRootCmd().Execute()
}

// loadConstants returns the set named by --constants, or the default set.
func (ro *rootOptions) loadConstants() (*constants.Constants, error) {
	if ro.constantsFile == "" {
		logger.Debug("using built-in constants")
		return constants.Default(), nil
	}

	format, err := constants.FormatFromExtension(ro.constantsFile)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(ro.constantsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read constants: %w", err)
	}
	c, err := constants.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode constants: %w", err)
	}
	logger.Info("constants loaded from %s (%s)", ro.constantsFile, format)

	return c, nil
}

// parseOperand reads an uncertain flag value.
func parseOperand(flag, text string) (ufloat.Value, error) {
	v, err := arar.FromText(strings.TrimSpace(text)).Value()
	if err != nil {
		return ufloat.Value{}, fmt.Errorf("invalid --%s: %w", flag, err)
	}

	return v, nil
}
