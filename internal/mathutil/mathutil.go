package mathutil

import (
	"math/big"
	"math/bits"
	"strings"
	"unsafe"
)

var (
	// 64 zeros, enough to pad any field of a uint64.
	manyZeros = strings.Repeat("0", 64)

	bigOne  = big.NewInt(1)
	bigFive = big.NewInt(5)
)

// BinaryDigits returns the number of significant bits in 'value'.
func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// Mask returns value truncated to its lowest 'width' bits.
func Mask(value uint64, width uint) uint64 {
	if width >= 64 {
		return value
	}
	return value & (1<<width - 1)
}

// FitsWidth reports whether value can be stored in 'width' bits without truncation.
func FitsWidth(value uint64, width uint) bool {
	return BinaryDigits(value) <= int(width)
}

// BitString formats the lowest 'width' bits of value, most significant bit first.
func BitString(value uint64, width int) string {
	var b strings.Builder
	WriteBits(&b, value, width)
	return b.String()
}

// WriteBits writes the lowest 'width' bits of value into b, most significant bit first.
func WriteBits(b *strings.Builder, value uint64, width int) {
	if width <= 0 {
		return
	}
	if width > 64 {
		width = 64
	}
	value = Mask(value, uint(width))
	if pad := width - BinaryDigits(value); pad > 0 {
		b.WriteString(manyZeros[:pad])
	}
	for i := BinaryDigits(value) - 1; i >= 0; i-- {
		b.WriteByte('0' + byte(value>>uint(i)&1))
	}
}

// ParseBits parses a string of exactly 'width' binary digits.
// Returns the index of the first offending symbol, or -1 on success.
func ParseBits(s string, width int) (value uint64, badPos int) {
	if width > 64 {
		return 0, 0
	}
	for i := 0; i < len(s); i++ {
		if i >= width || (s[i] != '0' && s[i] != '1') {
			return 0, i
		}
		value = value<<1 | uint64(s[i]-'0')
	}
	if len(s) < width {
		return 0, len(s)
	}
	return value, -1
}

// Pow2 returns 2^exp as a new integer. exp must be non-negative.
func Pow2(exp int) *big.Int {
	return new(big.Int).Lsh(bigOne, uint(exp))
}

// Pow5 returns 5^exp as a new integer. exp must be non-negative.
func Pow5(exp int) *big.Int {
	return new(big.Int).Exp(bigFive, big.NewInt(int64(exp)), nil)
}

// ScaleBinary returns num * 2^exp as an exact rational.
// Negative exponents put a power of two into the denominator.
func ScaleBinary(num *big.Int, exp int) *big.Rat {
	if exp >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Lsh(num, uint(exp)))
	}
	return new(big.Rat).SetFrac(num, Pow2(-exp))
}

// ScaleDecimal returns such (m, e), that num * 2^exp == m * 10^e exactly.
// For negative exp it uses 2^-k == 5^k * 10^-k.
func ScaleDecimal(num *big.Int, exp int) (m *big.Int, e int) {
	if exp >= 0 {
		return new(big.Int).Lsh(num, uint(exp)), 0
	}
	return new(big.Int).Mul(num, Pow5(-exp)), exp
}

// AddSigned sums two sign-magnitude numbers. The sum of magnitudes must fit a uint64.
// The result is returned in a sign-magnitude form, zero is never negative.
func AddSigned(neg1 bool, mag1 uint64, neg2 bool, mag2 uint64) (neg bool, mag uint64) {
	if neg1 == neg2 {
		neg, mag = neg1, mag1+mag2
	} else if mag1 >= mag2 {
		neg, mag = neg1, mag1-mag2
	} else {
		neg, mag = neg2, mag2-mag1
	}
	return neg && mag != 0, mag
}
