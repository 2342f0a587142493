// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binary64

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	a := assert.New(t)
	a.Equal(math.Nextafter(1, 2)-1, Epsilon)
	a.Equal(0x1p-1022, MinNormal)
	a.Equal(math.SmallestNonzeroFloat64, MinDenormal)
	a.Equal(math.Inf(1), Infinity)
	a.True(math.IsNaN(CanonicalNaN))
	a.Equal(Bits(math.MaxUint64), FromFloat64(CanonicalNaN))
	a.Equal("2.2204460492503131E-16", strconv.FormatFloat(Epsilon, 'E', 16, 64))
	a.Equal("2.2250738585072014E-308", strconv.FormatFloat(MinNormal, 'E', 16, 64))
	a.Equal(uint16(971), FromFloat64(Epsilon).ExponentBits())
}

func TestCompile(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		sign Sign
		e, m uint64
		f    float64
	}{
		{Positive, 0, 0, 0},
		{Positive, 1023, 0, 1},
		{Negative, 1024, 1 << 50, -2.5},
		{Positive, 0, 1, math.SmallestNonzeroFloat64},
		{Positive, 2046, mantMask, math.MaxFloat64},
		{Negative, 2047, 0, math.Inf(-1)},
		// out of range fields are truncated.
		{Positive, 1023 + 2048, 0, 1},
		{Positive, 1023, 1<<52 | 1<<51, 1.5},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(FromFloat64(test.f), FromFloat64(Compile(test.sign, test.e, test.m)))
		})
	}
	a.Equal(Negative, SignOf(Compile(Negative, 0, 0)))
}

func TestCompileStrict(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		e, m uint64
		f    float64
		err  string
	}{
		{1023, 0, 1, ""},
		{2047, 0, math.Inf(1), ""},
		{2048, 0, 0, "exponent 2048: value out of range"},
		{0, 1 << 52, 0, "mantissa 4503599627370496: value out of range"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := CompileStrict(Positive, test.e, test.m)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.f, f)
				}
			} else {
				a.EqualError(err, test.err)
				a.True(errors.Is(err, ErrOutOfRange))
			}
		})
	}
}

func TestCompileRoundTrip(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(3))
	for i := 0; i < randomPatterns; i++ {
		b := randomBits(r)
		x := b.Float64()
		s, e, m := b.Split()
		compiled := FromFloat64(Compile(SignOf(x), uint64(e), m))
		if b.IsNaN() {
			cs, ce, cm := compiled.Split()
			a.Equal(s, cs)
			a.Equal(e, ce)
			if !a.Equal(m, cm) {
				return
			}
			continue
		}
		if !a.Equal(b, compiled, "%#v", b) {
			return
		}
		a.Equal(x, Compile(SignOf(x), uint64(e), m))
	}
}
