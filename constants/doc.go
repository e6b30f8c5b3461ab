// Package constants provides the immutable physical-constants set used by
// every ⁴⁰Ar/³⁹Ar calculation.
//
// A Constants value bundles:
//   - ⁴⁰K decay constants (β⁻ and electron-capture branches) and their sum λk,
//   - decay constants of ³⁶Cl, ³⁷Ar and ³⁹Ar,
//   - atmospheric ⁴⁰Ar/³⁶Ar and ⁴⁰Ar/³⁸Ar (and the derived ³⁸Ar/³⁶Ar),
//   - ⁴⁰K abundance and the atomic masses of K and O,
//   - the age unit scalar (1e6 ⇒ ages in Ma),
//   - the Ca/K interference model: iterative ("normal") or a fixed ³⁷Ar(K)/³⁹Ar(K),
//   - whether a negative calcium correction is allowed.
//
// Every uncertain constant is exposed as a ufloat.Value created once, when
// the set is built, so repeated reads stay fully correlated.
//
// Construction:
//
//	c := constants.Default()                              // Steiger & Jäger 1977 / Nier 1950
//	c  = constants.New(constants.WithAgeScalar(1e3))      // ages in ka
//	c, err := constants.Decode(data, constants.FormatTOML) // from configuration
//
// A *Constants is read-only after construction and safe for concurrent use.
// Library entry points accept a nil *Constants and substitute Default().
package constants
