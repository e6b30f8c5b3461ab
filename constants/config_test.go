package constants_test

import (
	"testing"

	"github.com/katalvlaran/ararpy/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
k3739_mode: fixed
fixed_k3739: 0.015
allow_negative_ca_correction: true
age_scalar: 1000
atm4036: 298.56
atm4036_err: 0.31
`

const tomlConfig = `
k3739_mode = "normal"
age_scalar = 1e9
lambda_b = 4.962e-10
lambda_b_err = 0.0
atm4038 = 1583.9
`

// TestDecode_YAML overrides a subset of keys, the rest keep defaults.
func TestDecode_YAML(t *testing.T) {
	c, err := constants.Decode([]byte(yamlConfig), constants.FormatYAML)
	require.NoError(t, err)

	assert.False(t, c.IterativeK3739())
	assert.Equal(t, 0.015, c.FixedK3739())
	assert.True(t, c.AllowNegativeCaCorrection())
	assert.Equal(t, 1000.0, c.AgeScalar())
	assert.Equal(t, 298.56, c.Atm4036().Nominal())
	assert.Equal(t, 0.31, c.Atm4036().StdDev())
	assert.Equal(t, constants.DefaultAtm4038, c.Atm4038().Nominal(), "untouched key keeps its default")
	assert.Equal(t, constants.DefaultAtm4038Err, c.Atm4038().StdDev())
}

// TestDecode_TOML overrides a subset of keys, the rest keep defaults.
func TestDecode_TOML(t *testing.T) {
	c, err := constants.Decode([]byte(tomlConfig), constants.FormatTOML)
	require.NoError(t, err)

	assert.True(t, c.IterativeK3739())
	assert.Equal(t, 1e9, c.AgeScalar())
	assert.Equal(t, 1583.9, c.Atm4038().Nominal())
	assert.InDelta(t, constants.DefaultLambdaECErr, c.LambdaK().StdDev(), 1e-20, "β⁻ error zeroed, EC error kept")
}

// TestDecode_Empty yields the default set.
func TestDecode_Empty(t *testing.T) {
	for _, f := range []constants.Format{constants.FormatYAML, constants.FormatTOML} {
		c, err := constants.Decode(nil, f)
		require.NoError(t, err, f.String())
		assert.Equal(t, constants.DefaultConfig(), c.Config(), f.String())
	}
}

// TestDecode_Errors covers syntax errors, unknown keys, invalid values and formats.
func TestDecode_Errors(t *testing.T) {
	_, err := constants.Decode([]byte("age_scalar: [1"), constants.FormatYAML)
	assert.ErrorIs(t, err, constants.ErrDecode)

	_, err = constants.Decode([]byte("bogus_key: 1"), constants.FormatYAML)
	assert.ErrorIs(t, err, constants.ErrDecode, "unknown YAML keys are rejected")

	_, err = constants.Decode([]byte("bogus_key = 1"), constants.FormatTOML)
	assert.ErrorIs(t, err, constants.ErrDecode, "unknown TOML keys are rejected")

	_, err = constants.Decode([]byte("age_scalar = = 1"), constants.FormatTOML)
	assert.ErrorIs(t, err, constants.ErrDecode)

	_, err = constants.Decode([]byte("atm4036: -1"), constants.FormatYAML)
	assert.ErrorIs(t, err, constants.ErrInvalidConstant)

	_, err = constants.Decode([]byte("{}"), constants.Format(42))
	assert.ErrorIs(t, err, constants.ErrUnknownFormat)
}

// TestFormatFromExtension maps file names to formats.
func TestFormatFromExtension(t *testing.T) {
	f, err := constants.FormatFromExtension("lab/constants.YAML")
	require.NoError(t, err)
	assert.Equal(t, constants.FormatYAML, f)

	f, err = constants.FormatFromExtension("constants.yml")
	require.NoError(t, err)
	assert.Equal(t, constants.FormatYAML, f)

	f, err = constants.FormatFromExtension("constants.toml")
	require.NoError(t, err)
	assert.Equal(t, constants.FormatTOML, f)

	_, err = constants.FormatFromExtension("constants.json")
	assert.ErrorIs(t, err, constants.ErrUnknownFormat)

	assert.Equal(t, "Format(7)", constants.Format(7).String())
}

// TestEncode_RoundTrip encodes and decodes both syntaxes.
func TestEncode_RoundTrip(t *testing.T) {
	cfg := constants.New(constants.WithFixedK3739(0.03), constants.WithAgeScalar(1e3)).Config()
	for _, f := range []constants.Format{constants.FormatYAML, constants.FormatTOML} {
		data, err := constants.Encode(cfg, f)
		require.NoError(t, err, f.String())

		back, err := constants.DecodeConfig(data, f)
		require.NoError(t, err, f.String())
		assert.Equal(t, cfg, back, f.String())
	}

	_, err := constants.Encode(cfg, constants.Format(9))
	assert.ErrorIs(t, err, constants.ErrUnknownFormat)
}
