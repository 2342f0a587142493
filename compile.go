// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binary64

import (
	"errors"
	"fmt"

	mu "github.com/avdva/binary64/internal/mathutil"
)

var (
	// ErrOutOfRange is returned by CompileStrict for fields wider than their bit widths.
	ErrOutOfRange = errors.New("value out of range")
)

var (
	// Epsilon is the difference between 1 and the next representable value, 2^-52.
	Epsilon = Compile(Positive, bias-mantBits, 0)
	// MinNormal is the smallest positive normal value, 2^-1022.
	MinNormal = Compile(Positive, 1, 0)
	// MinDenormal is the smallest positive denormal value, 2^-1074.
	// It is also the ULP of every denormal and of zero.
	MinDenormal = Compile(Positive, 0, 1)
	// Infinity is the positive infinity.
	Infinity = Compile(Positive, maxExpRaw, 0)
	// CanonicalNaN is a negative NaN with all mantissa bits set.
	CanonicalNaN = Compile(Negative, maxExpRaw, mantMask)
)

// Compile builds a float64 from the sign and the raw, already biased, field values.
// exp is the 11-bit stored exponent (0-2047), mant is the 52-bit stored mantissa.
// Values wider than their fields are silently truncated to the field width,
// see CompileStrict for a checked version.
// For any x, including NaNs, Compile(SignOf(x), exp(x), mant(x)) has the bit pattern of x.
func Compile(sign Sign, exp, mant uint64) float64 {
	return fromFields(number(sign.Bit()), exp, mant).Float64()
}

// CompileStrict is like Compile, but returns ErrOutOfRange,
// if exp does not fit 11 bits or mant does not fit 52 bits.
func CompileStrict(sign Sign, exp, mant uint64) (float64, error) {
	if !mu.FitsWidth(exp, expBits) {
		return 0, fmt.Errorf("exponent %d: %w", exp, ErrOutOfRange)
	}
	if !mu.FitsWidth(mant, mantBits) {
		return 0, fmt.Errorf("mantissa %d: %w", mant, ErrOutOfRange)
	}
	return Compile(sign, exp, mant), nil
}
