package constants

import (
	"math"
	"strings"

	"github.com/katalvlaran/ararpy/ufloat"
)

// Interference model names for Config.K3739Mode.
const (
	// K3739ModeNormal solves ³⁷Ar(K) and ³⁹Ar(K) iteratively from the production ratios.
	K3739ModeNormal = "normal"

	// K3739ModeFixed uses a fixed ³⁷Ar(K)/³⁹Ar(K) ratio (Config.FixedK3739).
	// Any mode other than "normal" selects the fixed model.
	K3739ModeFixed = "fixed"
)

// Defaults (single source of truth).
//
// Decay constants of ⁴⁰K are per year (Steiger & Jäger 1977); those of ³⁶Cl,
// ³⁷Ar and ³⁹Ar are per day, matching decay times expressed in days.
const (
	DefaultAbundance40K = 0.000117
	DefaultMassK        = 39.0983
	DefaultMassO        = 15.9994

	DefaultLambdaBeta    = 4.962e-10
	DefaultLambdaBetaErr = 9.3e-13
	DefaultLambdaEC      = 5.81e-11
	DefaultLambdaECErr   = 1.6e-13

	DefaultLambdaCl36 = 6.308e-9
	DefaultLambdaAr37 = 0.01975
	DefaultLambdaAr39 = 7.068e-6

	DefaultAtm4036    = 295.5
	DefaultAtm4036Err = 0.5
	DefaultAtm4038    = 1575.0
	DefaultAtm4038Err = 2.0

	// DefaultAgeScalar reports ages in Ma.
	DefaultAgeScalar = 1e6

	DefaultK3739Mode                 = K3739ModeNormal
	DefaultFixedK3739                = 0.01
	DefaultAllowNegativeCaCorrection = false
)

// Constants is an immutable physical-constants set. Build it with Default,
// New, FromConfig or Decode; the zero value is not usable.
type Constants struct {
	cfg Config

	lambdaBeta ufloat.Value
	lambdaEC   ufloat.Value
	lambdaK    ufloat.Value
	lambdaCl36 ufloat.Value
	lambdaAr37 ufloat.Value
	lambdaAr39 ufloat.Value
	atm4036    ufloat.Value
	atm4038    ufloat.Value
	atm3836    ufloat.Value
}

// Default returns the default constants set.
func Default() *Constants {
	c, err := FromConfig(DefaultConfig())
	if err != nil {
		// DefaultConfig is validated by tests; reaching this is a programmer error.
		panic(err.Error())
	}

	return c
}

// OrDefault returns c, or Default() when c is nil.
func OrDefault(c *Constants) *Constants {
	if c == nil {
		return Default()
	}

	return c
}

// New returns the default set modified by opts.
// Option constructors panic on nonsensical values.
func New(opts ...Option) *Constants {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	c, err := FromConfig(cfg)
	if err != nil {
		panic(err.Error())
	}

	return c
}

// FromConfig validates cfg and builds the uncertain constants from it.
func FromConfig(cfg Config) (*Constants, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Constants{cfg: cfg}
	c.lambdaBeta = ufloat.New(cfg.LambdaBeta, cfg.LambdaBetaErr)
	c.lambdaEC = ufloat.New(cfg.LambdaEC, cfg.LambdaECErr)
	c.lambdaK = c.lambdaBeta.Add(c.lambdaEC)
	c.lambdaCl36 = ufloat.New(cfg.LambdaCl36, cfg.LambdaCl36Err)
	c.lambdaAr37 = ufloat.New(cfg.LambdaAr37, cfg.LambdaAr37Err)
	c.lambdaAr39 = ufloat.New(cfg.LambdaAr39, cfg.LambdaAr39Err)
	c.atm4036 = ufloat.New(cfg.Atm4036, cfg.Atm4036Err)
	c.atm4038 = ufloat.New(cfg.Atm4038, cfg.Atm4038Err)

	var err error
	if c.atm3836, err = c.atm4036.Div(c.atm4038); err != nil {
		return nil, ErrInvalidConstant
	}

	return c, nil
}

// Config returns a copy of the configuration the set was built from.
func (c *Constants) Config() Config { return c.cfg }

// LambdaBeta returns the ⁴⁰K β⁻ decay constant (1/a).
func (c *Constants) LambdaBeta() ufloat.Value { return c.lambdaBeta }

// LambdaEC returns the ⁴⁰K electron-capture decay constant (1/a).
func (c *Constants) LambdaEC() ufloat.Value { return c.lambdaEC }

// LambdaK returns the total ⁴⁰K decay constant λβ⁻ + λε (1/a).
func (c *Constants) LambdaK() ufloat.Value { return c.lambdaK }

// LambdaCl36 returns the ³⁶Cl decay constant.
func (c *Constants) LambdaCl36() ufloat.Value { return c.lambdaCl36 }

// LambdaAr37 returns the ³⁷Ar decay constant.
func (c *Constants) LambdaAr37() ufloat.Value { return c.lambdaAr37 }

// LambdaAr39 returns the ³⁹Ar decay constant.
func (c *Constants) LambdaAr39() ufloat.Value { return c.lambdaAr39 }

// Atm4036 returns atmospheric ⁴⁰Ar/³⁶Ar.
func (c *Constants) Atm4036() ufloat.Value { return c.atm4036 }

// Atm4038 returns atmospheric ⁴⁰Ar/³⁸Ar.
func (c *Constants) Atm4038() ufloat.Value { return c.atm4038 }

// Atm3836 returns atmospheric ³⁸Ar/³⁶Ar derived as (⁴⁰Ar/³⁶Ar)/(⁴⁰Ar/³⁸Ar).
func (c *Constants) Atm3836() ufloat.Value { return c.atm3836 }

// Abundance40K returns the atomic abundance of ⁴⁰K in potassium.
func (c *Constants) Abundance40K() float64 { return c.cfg.Abundance40K }

// MassK returns the atomic mass of potassium.
func (c *Constants) MassK() float64 { return c.cfg.MassK }

// MassO returns the atomic mass of oxygen.
func (c *Constants) MassO() float64 { return c.cfg.MassO }

// AgeScalar returns the divisor converting years into the reporting unit.
func (c *Constants) AgeScalar() float64 { return c.cfg.AgeScalar }

// K3739Mode returns the configured interference model name.
func (c *Constants) K3739Mode() string { return c.cfg.K3739Mode }

// IterativeK3739 reports whether the iterative ("normal") Ca/K model is selected.
func (c *Constants) IterativeK3739() bool {
	return strings.EqualFold(strings.TrimSpace(c.cfg.K3739Mode), K3739ModeNormal)
}

// FixedK3739 returns the fixed ³⁷Ar(K)/³⁹Ar(K) used by the fixed-ratio model.
func (c *Constants) FixedK3739() float64 { return c.cfg.FixedK3739 }

// AllowNegativeCaCorrection reports whether ³⁷Ar(Ca) may go below zero.
func (c *Constants) AllowNegativeCaCorrection() bool { return c.cfg.AllowNegativeCaCorrection }

// positiveFinite reports x > 0 and finite.
func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}

// validErr reports σ ≥ 0 and finite.
func validErr(x float64) bool {
	return x >= 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
