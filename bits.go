// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package binary64 implements introspection and exact reconstruction
// of IEEE 754 double-precision values.
// A value can be split into its sign, biased exponent and mantissa fields,
// classified, rebuilt from the fields, measured in ULPs, and converted
// into an exact rational or decimal number.
package binary64

import (
	"math"
	"unsafe"

	mu "github.com/avdva/binary64/internal/mathutil"
)

type number = uint64

const (
	bitsInNumber = unsafe.Sizeof(number(0)) * 8
	expBits      = 11
	mantBits     = 52
	signShift    = bitsInNumber - 1

	expMask  = 1<<expBits - 1
	mantMask = 1<<mantBits - 1
	signMask = 1 << signShift
	absMask  = signMask - 1

	// maxExpRaw marks infinities and not-a-numbers.
	maxExpRaw = expMask
	bias      = 1<<(expBits-1) - 1
	// minNormalExp is the logical exponent of both denormals and the smallest normals.
	minNormalExp = 1 - bias
	implicitBit  = 1 << mantBits
)

// Bits is a raw IEEE 754 binary64 bit pattern.
//   63 62        52                                                    0
//   _|__________|____________________________________________________
//   seeeeeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
//
// Every 64-bit pattern is a valid Bits value, including all NaN payloads.
// Conversion between float64 and Bits is lossless in both directions.
type Bits number

// FromFloat64 returns the bit pattern of f.
func FromFloat64(f float64) Bits {
	return Bits(math.Float64bits(f))
}

// FromFields packs the sign bit, the biased exponent and the mantissa into a bit pattern.
// Fields wider than their bit widths are truncated.
func FromFields(signBit uint, exp uint16, mant uint64) Bits {
	return fromFields(number(signBit), number(exp), mant)
}

func fromFields(s, e, m number) Bits {
	return Bits(mu.Mask(s, 1)<<signShift | mu.Mask(e, expBits)<<mantBits | mu.Mask(m, mantBits))
}

// Float64 returns the float64 value with the bit pattern b.
func (b Bits) Float64() float64 {
	return math.Float64frombits(uint64(b))
}

// Uint64 returns the bit pattern as an unsigned integer.
func (b Bits) Uint64() uint64 {
	return uint64(b)
}

// SignBit returns 1 for negative values, including -0 and negative NaNs, and 0 otherwise.
func (b Bits) SignBit() uint {
	return uint(b >> signShift)
}

// ExponentBits returns the raw 11-bit biased exponent.
func (b Bits) ExponentBits() uint16 {
	return uint16(b >> mantBits & expMask)
}

// MantissaBits returns the raw 52-bit mantissa, without the implicit leading bit.
func (b Bits) MantissaBits() uint64 {
	return uint64(b & mantMask)
}

// Split returns all three fields at once.
func (b Bits) Split() (signBit uint, exp uint16, mant uint64) {
	return b.SignBit(), b.ExponentBits(), b.MantissaBits()
}

// Sign returns the sign of b. Zeros and NaNs carry a sign too.
func (b Bits) Sign() Sign {
	return signFromBit(b.SignBit())
}

// Abs returns b with the sign bit cleared.
func (b Bits) Abs() Bits {
	return b & absMask
}

// Neg returns b with the sign bit flipped.
func (b Bits) Neg() Bits {
	return b ^ signMask
}

func (b Bits) abs() number {
	return number(b & absMask)
}
