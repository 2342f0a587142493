// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binary64

import (
	"math"
	"math/big"
	"strconv"

	mu "github.com/avdva/binary64/internal/mathutil"
)

const (
	// ulp order position of both infinities.
	infOrder = number(maxExpRaw) << mantBits
)

// Steps is a signed count of representable values between two binary64 numbers.
// If any of the measured values was a NaN, Steps holds that NaN instead of a count.
type Steps struct {
	neg bool
	mag uint64
	echo
}

// Int64 returns the count, and false, if it is a NaN or does not fit an int64.
func (s Steps) Int64() (int64, bool) {
	if s.isSet {
		return 0, false
	}
	if s.neg {
		if s.mag > 1<<63 {
			return 0, false
		}
		return -int64(s.mag), true
	}
	if s.mag > math.MaxInt64 {
		return 0, false
	}
	return int64(s.mag), true
}

// Big returns the exact count, or nil for a NaN.
func (s Steps) Big() *big.Int {
	if s.isSet {
		return nil
	}
	res := new(big.Int).SetUint64(s.mag)
	if s.neg {
		res.Neg(res)
	}
	return res
}

// Sign returns -1, 0, or 1. NaNs have zero sign.
func (s Steps) Sign() int {
	switch {
	case s.isSet || s.mag == 0:
		return 0
	case s.neg:
		return -1
	default:
		return 1
	}
}

// Float64 returns the count as a float64, or the NaN itself.
// Counts above 2^53 are rounded.
func (s Steps) Float64() float64 {
	if s.isSet {
		return s.value
	}
	f := float64(s.mag)
	if s.neg {
		f = -f
	}
	return f
}

// String returns the decimal count, or "NaN".
func (s Steps) String() string {
	if s.isSet {
		return "NaN"
	}
	str := strconv.FormatUint(s.mag, 10)
	if s.neg {
		str = "-" + str
	}
	return str
}

// ULP returns the spacing between |x| and the next representable value above |x|.
// Non-finite values are returned unchanged.
// Zeros and denormals have an ULP of MinDenormal.
func ULP(x float64) float64 {
	b := FromFloat64(x)
	switch b.Category() {
	case Infinite, NaN:
		return x
	case Zero, Denormal:
		return MinDenormal
	}
	e := int(b.ExponentBits())
	if f := e - mantBits; f >= 1 {
		return Compile(Positive, uint64(f), 0)
	}
	// the last mantissa bit of the lowest binades weighs less than MinNormal,
	// so the spacing is a denormal with a single bit set.
	return Compile(Positive, 0, 1<<uint(e-1))
}

// ULPsFromZero returns the number of representable values between 0 and x, signed as x.
// It relies on the fact, that the bit pattern of |x| read as an integer is monotonic in |x|.
// For a NaN it returns that NaN.
func ULPsFromZero(x float64) Steps {
	b := FromFloat64(x)
	if b.IsNaN() {
		return Steps{echo: echoOf(x)}
	}
	return Steps{neg: b.SignBit() == 1 && !b.IsZero(), mag: b.abs()}
}

// ULPsFrom returns the signed number of representable values between reference and x.
// The result is negative if x < reference, and zero if x == reference,
// so that +0 and -0 are zero ULPs apart.
// If x is a NaN, it is returned, otherwise if reference is a NaN, reference is returned.
func ULPsFrom(x, reference float64) Steps {
	if FromFloat64(x).IsNaN() {
		return Steps{echo: echoOf(x)}
	}
	if FromFloat64(reference).IsNaN() {
		return Steps{echo: echoOf(reference)}
	}
	if x == reference {
		return Steps{}
	}
	s1, s2 := ULPsFromZero(x), ULPsFromZero(reference)
	neg, mag := mu.AddSigned(s1.neg, s1.mag, !s2.neg, s2.mag)
	return Steps{neg: neg, mag: mag}
}

// Step moves b by n positions along the order of representable values.
// Positive n moves towards +Inf, negative n towards -Inf. Both zeros are the same position,
// landing on zero keeps the sign of b. The result saturates at infinities, NaNs don't move.
func (b Bits) Step(n int64) Bits {
	if n == 0 || b.IsNaN() {
		return b
	}
	neg := b.SignBit() == 1 && !b.IsZero()
	stepNeg, stepMag := n < 0, uint64(n)
	if stepNeg {
		stepMag = uint64(-n)
	}
	neg, mag := mu.AddSigned(neg, b.abs(), stepNeg, stepMag)
	if mag > infOrder {
		mag = infOrder
	}
	if mag == 0 {
		return b & signMask
	}
	if neg {
		return Bits(mag) | signMask
	}
	return Bits(mag)
}

// Next returns the smallest representable value greater than x.
func Next(x float64) float64 {
	return FromFloat64(x).Step(1).Float64()
}

// Prev returns the largest representable value less than x.
func Prev(x float64) float64 {
	return FromFloat64(x).Step(-1).Float64()
}
