// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binary64

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/binary64/internal/mathutil"
)

var (
	// ErrNonFinite is returned for conversions that are only defined for finite values.
	ErrNonFinite = errors.New("non-finite value")

	bigPow2Mant = mu.Pow2(mantBits)
)

// echo holds a non-finite input, returned in place of a numeric result.
type echo struct {
	value float64
	isSet bool
}

func echoOf(x float64) echo {
	return echo{value: x, isSet: true}
}

// Echo returns the original non-finite input and true,
// if the operation was not numerically meaningful for it.
func (e echo) Echo() (float64, bool) {
	return e.value, e.isSet
}

// Fraction is the mantissa of a binary64 value as an exact rational,
// or the echoed input for infinities and NaNs.
type Fraction struct {
	rat *big.Rat
	echo
}

// Rat returns a copy of the fraction, or nil for an echo.
func (f Fraction) Rat() *big.Rat {
	if f.rat == nil {
		return nil
	}
	return new(big.Rat).Set(f.rat)
}

// String returns the fraction as "a/b", or the echoed value.
func (f Fraction) String() string {
	if f.isSet {
		return fmt.Sprint(f.value)
	}
	if f.rat == nil {
		return "<nil>"
	}
	return f.rat.String()
}

// Exponent is the unbiased exponent of a binary64 value,
// or the echoed input for infinities and NaNs.
type Exponent struct {
	e int
	echo
}

// Int returns the exponent and true, or false for an echo.
func (e Exponent) Int() (int, bool) {
	return e.e, !e.isSet
}

// String returns the exponent in decimal, or the echoed value.
func (e Exponent) String() string {
	if e.isSet {
		return fmt.Sprint(e.value)
	}
	return fmt.Sprint(e.e)
}

// Interpreted is a binary64 value split into logical parts, so that for finite values
//	x == Sign * Fraction * 2^Exponent
type Interpreted struct {
	Sign     Sign
	Exponent Exponent
	Fraction Fraction
}

// Interpret splits x into its sign, unbiased exponent and mantissa fraction.
func Interpret(x float64) Interpreted {
	return Interpreted{
		Sign:     SignOf(x),
		Exponent: BiasedExponent(x),
		Fraction: MantissaFraction(x),
	}
}

// MantissaFraction returns the mantissa of x as an exact rational:
// 0 for zeros, in [0, 1) for denormals, in [1, 2) for normals, with the implicit bit restored.
// Infinities and NaNs are echoed.
func MantissaFraction(x float64) Fraction {
	b := FromFloat64(x)
	if !b.IsFinite() {
		return Fraction{echo: echoOf(x)}
	}
	if b.IsZero() {
		return Fraction{rat: new(big.Rat)}
	}
	num := new(big.Int).SetUint64(b.significand())
	return Fraction{rat: new(big.Rat).SetFrac(num, bigPow2Mant)}
}

// BiasedExponent returns the exponent of x with the bias subtracted.
// Zeros and denormals have the exponent of the smallest normals, -1022.
// Infinities and NaNs are echoed.
func BiasedExponent(x float64) Exponent {
	b := FromFloat64(x)
	if !b.IsFinite() {
		return Exponent{echo: echoOf(x)}
	}
	return Exponent{e: b.exponent()}
}

// ToExactRational returns x as an exact rational number.
// The denominator is always a power of two.
// Returns ErrNonFinite for infinities and NaNs.
func ToExactRational(x float64) (*big.Rat, error) {
	return FromFloat64(x).Rat()
}

// ExactDecimal returns the exact decimal expansion of x.
// Every finite binary64 value has a finite decimal expansion, as 2^-k == 5^k * 10^-k.
// Returns ErrNonFinite for infinities and NaNs.
func ExactDecimal(x float64) (decimal.Decimal, error) {
	return FromFloat64(x).Decimal()
}

// Rat returns b as an exact rational number, see ToExactRational.
func (b Bits) Rat() (*big.Rat, error) {
	num, e, err := b.intAndExp()
	if err != nil {
		return nil, err
	}
	return mu.ScaleBinary(num, e), nil
}

// Decimal returns b as an exact decimal number, see ExactDecimal.
func (b Bits) Decimal() (decimal.Decimal, error) {
	num, e, err := b.intAndExp()
	if err != nil {
		return decimal.Zero, err
	}
	m, e := mu.ScaleDecimal(num, e)
	return decimal.NewFromBigInt(m, int32(e)), nil
}

// intAndExp returns such (num, e), that b == num * 2^e, where num is signed.
func (b Bits) intAndExp() (num *big.Int, e int, err error) {
	if !b.IsFinite() {
		return nil, 0, fmt.Errorf("%v: %w", b, ErrNonFinite)
	}
	num = new(big.Int).SetUint64(b.significand())
	if b.SignBit() == 1 {
		num.Neg(num)
	}
	return num, b.exponent() - mantBits, nil
}

// significand returns the mantissa with the implicit bit restored for normals.
func (b Bits) significand() uint64 {
	if b.ExponentBits() == 0 {
		return b.MantissaBits()
	}
	return b.MantissaBits() | implicitBit
}

// exponent returns the unbiased exponent of a finite value.
func (b Bits) exponent() int {
	if e := int(b.ExponentBits()); e > 0 {
		return e - bias
	}
	return minNormalExp
}
