package constants

// Panic messages for invalid option arguments (programmer errors).
const (
	panicAgeScalar  = "constants: WithAgeScalar: scalar must be positive and finite"
	panicFixedK3739 = "constants: WithFixedK3739: ratio must be non-negative and finite"
	panicMode       = "constants: WithK3739Mode: mode must not be empty"
	panicConstant   = "constants: value must be positive and finite, error non-negative"
)

// Option mutates a Config before the set is built.
type Option func(*Config)

// WithK3739Mode selects the Ca/K interference model ("normal" = iterative).
func WithK3739Mode(mode string) Option {
	if mode == "" {
		panic(panicMode)
	}

	return func(c *Config) { c.K3739Mode = mode }
}

// WithFixedK3739 selects the fixed-ratio model with the given ³⁷Ar(K)/³⁹Ar(K).
func WithFixedK3739(ratio float64) Option {
	if !validErr(ratio) {
		panic(panicFixedK3739)
	}

	return func(c *Config) {
		c.K3739Mode = K3739ModeFixed
		c.FixedK3739 = ratio
	}
}

// WithAllowNegativeCaCorrection disables the ³⁷Ar(Ca) ≥ 0 floor when allow is true.
func WithAllowNegativeCaCorrection(allow bool) Option {
	return func(c *Config) { c.AllowNegativeCaCorrection = allow }
}

// WithAgeScalar sets the reporting unit: 1 (a), 1e3 (ka), 1e6 (Ma), 1e9 (Ga).
func WithAgeScalar(scalar float64) Option {
	if !positiveFinite(scalar) {
		panic(panicAgeScalar)
	}

	return func(c *Config) { c.AgeScalar = scalar }
}

// WithLambdaK sets the ⁴⁰K branch decay constants and their uncertainties.
func WithLambdaK(beta, betaErr, ec, ecErr float64) Option {
	mustConstant(beta, betaErr)
	mustConstant(ec, ecErr)

	return func(c *Config) {
		c.LambdaBeta, c.LambdaBetaErr = beta, betaErr
		c.LambdaEC, c.LambdaECErr = ec, ecErr
	}
}

// WithLambdaCl36 sets the ³⁶Cl decay constant.
func WithLambdaCl36(v, e float64) Option {
	mustConstant(v, e)

	return func(c *Config) { c.LambdaCl36, c.LambdaCl36Err = v, e }
}

// WithLambdaAr37 sets the ³⁷Ar decay constant.
func WithLambdaAr37(v, e float64) Option {
	mustConstant(v, e)

	return func(c *Config) { c.LambdaAr37, c.LambdaAr37Err = v, e }
}

// WithLambdaAr39 sets the ³⁹Ar decay constant.
func WithLambdaAr39(v, e float64) Option {
	mustConstant(v, e)

	return func(c *Config) { c.LambdaAr39, c.LambdaAr39Err = v, e }
}

// WithAtm4036 sets atmospheric ⁴⁰Ar/³⁶Ar.
func WithAtm4036(v, e float64) Option {
	mustConstant(v, e)

	return func(c *Config) { c.Atm4036, c.Atm4036Err = v, e }
}

// WithAtm4038 sets atmospheric ⁴⁰Ar/³⁸Ar.
func WithAtm4038(v, e float64) Option {
	mustConstant(v, e)

	return func(c *Config) { c.Atm4038, c.Atm4038Err = v, e }
}

func mustConstant(v, e float64) {
	if !positiveFinite(v) || !validErr(e) {
		panic(panicConstant)
	}
}
