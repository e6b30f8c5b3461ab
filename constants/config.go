package constants

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the plain, serialisable form of a constants set.
// Keys follow the snake_case names used in configuration files.
type Config struct {
	K3739Mode                 string  `yaml:"k3739_mode" toml:"k3739_mode"`
	FixedK3739                float64 `yaml:"fixed_k3739" toml:"fixed_k3739"`
	AllowNegativeCaCorrection bool    `yaml:"allow_negative_ca_correction" toml:"allow_negative_ca_correction"`
	AgeScalar                 float64 `yaml:"age_scalar" toml:"age_scalar"`

	LambdaBeta    float64 `yaml:"lambda_b" toml:"lambda_b"`
	LambdaBetaErr float64 `yaml:"lambda_b_err" toml:"lambda_b_err"`
	LambdaEC      float64 `yaml:"lambda_e" toml:"lambda_e"`
	LambdaECErr   float64 `yaml:"lambda_e_err" toml:"lambda_e_err"`
	LambdaCl36    float64 `yaml:"lambda_cl36" toml:"lambda_cl36"`
	LambdaCl36Err float64 `yaml:"lambda_cl36_err" toml:"lambda_cl36_err"`
	LambdaAr37    float64 `yaml:"lambda_ar37" toml:"lambda_ar37"`
	LambdaAr37Err float64 `yaml:"lambda_ar37_err" toml:"lambda_ar37_err"`
	LambdaAr39    float64 `yaml:"lambda_ar39" toml:"lambda_ar39"`
	LambdaAr39Err float64 `yaml:"lambda_ar39_err" toml:"lambda_ar39_err"`

	Atm4036    float64 `yaml:"atm4036" toml:"atm4036"`
	Atm4036Err float64 `yaml:"atm4036_err" toml:"atm4036_err"`
	Atm4038    float64 `yaml:"atm4038" toml:"atm4038"`
	Atm4038Err float64 `yaml:"atm4038_err" toml:"atm4038_err"`

	Abundance40K float64 `yaml:"abundance_40k" toml:"abundance_40k"`
	MassK        float64 `yaml:"mass_k" toml:"mass_k"`
	MassO        float64 `yaml:"mass_o" toml:"mass_o"`
}

// DefaultConfig returns the configuration behind Default().
func DefaultConfig() Config {
	return Config{
		K3739Mode:                 DefaultK3739Mode,
		FixedK3739:                DefaultFixedK3739,
		AllowNegativeCaCorrection: DefaultAllowNegativeCaCorrection,
		AgeScalar:                 DefaultAgeScalar,

		LambdaBeta:    DefaultLambdaBeta,
		LambdaBetaErr: DefaultLambdaBetaErr,
		LambdaEC:      DefaultLambdaEC,
		LambdaECErr:   DefaultLambdaECErr,
		LambdaCl36:    DefaultLambdaCl36,
		LambdaAr37:    DefaultLambdaAr37,
		LambdaAr39:    DefaultLambdaAr39,

		Atm4036:    DefaultAtm4036,
		Atm4036Err: DefaultAtm4036Err,
		Atm4038:    DefaultAtm4038,
		Atm4038Err: DefaultAtm4038Err,

		Abundance40K: DefaultAbundance40K,
		MassK:        DefaultMassK,
		MassO:        DefaultMassO,
	}
}

// Validate checks every field. It returns ErrInvalidConstant wrapped with the
// offending key.
func (cfg Config) Validate() error {
	positives := []struct {
		key string
		v   float64
	}{
		{"age_scalar", cfg.AgeScalar},
		{"lambda_b", cfg.LambdaBeta},
		{"lambda_e", cfg.LambdaEC},
		{"lambda_cl36", cfg.LambdaCl36},
		{"lambda_ar37", cfg.LambdaAr37},
		{"lambda_ar39", cfg.LambdaAr39},
		{"atm4036", cfg.Atm4036},
		{"atm4038", cfg.Atm4038},
		{"abundance_40k", cfg.Abundance40K},
		{"mass_k", cfg.MassK},
		{"mass_o", cfg.MassO},
	}
	for _, p := range positives {
		if !positiveFinite(p.v) {
			return fmt.Errorf("%w: %s must be positive and finite, got %g", ErrInvalidConstant, p.key, p.v)
		}
	}

	errs := []struct {
		key string
		v   float64
	}{
		{"fixed_k3739", cfg.FixedK3739},
		{"lambda_b_err", cfg.LambdaBetaErr},
		{"lambda_e_err", cfg.LambdaECErr},
		{"lambda_cl36_err", cfg.LambdaCl36Err},
		{"lambda_ar37_err", cfg.LambdaAr37Err},
		{"lambda_ar39_err", cfg.LambdaAr39Err},
		{"atm4036_err", cfg.Atm4036Err},
		{"atm4038_err", cfg.Atm4038Err},
	}
	for _, e := range errs {
		if !validErr(e.v) {
			return fmt.Errorf("%w: %s must be non-negative and finite, got %g", ErrInvalidConstant, e.key, e.v)
		}
	}

	if strings.TrimSpace(cfg.K3739Mode) == "" {
		return fmt.Errorf("%w: k3739_mode must not be empty", ErrInvalidConstant)
	}

	return nil
}

// Format names a configuration syntax.
type Format int

const (
	// FormatYAML decodes with gopkg.in/yaml.v3.
	FormatYAML Format = iota

	// FormatTOML decodes with github.com/BurntSushi/toml.
	FormatTOML
)

// String returns "yaml" or "toml".
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromExtension picks a Format from a file name (".yaml", ".yml", ".toml").
func FormatFromExtension(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DecodeConfig parses data over DefaultConfig(): keys absent from data keep
// their defaults.
func DecodeConfig(data []byte, format Format) (Config, error) {
	cfg := DefaultConfig()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !isEmptyYAML(err) {
			return Config{}, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%w: toml: %v", ErrDecode, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: toml: unknown key %q", ErrDecode, undecoded[0].String())
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return cfg, nil
}

// Decode parses and validates a configuration and builds the constants set.
func Decode(data []byte, format Format) (*Constants, error) {
	cfg, err := DecodeConfig(data, format)
	if err != nil {
		return nil, err
	}

	return FromConfig(cfg)
}

// Encode renders cfg in the given format.
func Encode(cfg Config, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// isEmptyYAML reports the io.EOF a yaml.Decoder returns for an empty document.
func isEmptyYAML(err error) bool {
	return errors.Is(err, io.EOF)
}
