// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binary64

// Category is one of the five IEEE 754 value classes.
type Category int

const (
	// Zero is +0 or -0.
	Zero Category = iota
	// Normal is a finite value with the implicit leading 1 bit.
	Normal
	// Denormal is a finite nonzero value below MinNormal in magnitude.
	Denormal
	// Infinite is +Inf or -Inf.
	Infinite
	// NaN is any not-a-number pattern, quiet or signaling.
	NaN
)

var categoryNames = [...]string{
	Zero:     "Zero",
	Normal:   "Normal",
	Denormal: "Denormal",
	Infinite: "Infinity",
	NaN:      "NaN",
}

// String returns the category name.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Category(?)"
	}
	return categoryNames[c]
}

// Category classifies b by its exponent and mantissa fields only.
// It never compares float values, so it is well-defined for NaNs.
func (b Bits) Category() Category {
	e, m := b.ExponentBits(), b.MantissaBits()
	switch {
	case e == 0 && m == 0:
		return Zero
	case e == 0:
		return Denormal
	case e < maxExpRaw:
		return Normal
	case m == 0:
		return Infinite
	default:
		return NaN
	}
}

// IsFinite returns true for zeros, normals and denormals.
func (b Bits) IsFinite() bool {
	return b.ExponentBits() != maxExpRaw
}

// IsNormal returns true, if b is finite and its magnitude is at least MinNormal.
func (b Bits) IsNormal() bool {
	return b.Category() == Normal
}

// IsDenormal returns true, if b is finite, nonzero, and its magnitude is below MinNormal.
func (b Bits) IsDenormal() bool {
	return b.Category() == Denormal
}

// IsZero returns true for both +0 and -0.
func (b Bits) IsZero() bool {
	return b.abs() == 0
}

// IsInf returns true for +Inf and -Inf.
func (b Bits) IsInf() bool {
	return b.Category() == Infinite
}

// IsNaN returns true for any NaN pattern.
func (b Bits) IsNaN() bool {
	return b.Category() == NaN
}

// Classify returns the category of x.
func Classify(x float64) Category {
	return FromFloat64(x).Category()
}

// IsFinite returns true, if x is neither an infinity nor a NaN.
func IsFinite(x float64) bool {
	return FromFloat64(x).IsFinite()
}

// IsNormal returns true, if x is a normal number.
func IsNormal(x float64) bool {
	return FromFloat64(x).IsNormal()
}

// IsDenormal returns true, if x is a denormal (subnormal) number.
func IsDenormal(x float64) bool {
	return FromFloat64(x).IsDenormal()
}
