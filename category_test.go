package binary64

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		b   Bits
		cat Category
	}{
		{FromFields(0, 0, 0), Zero},
		{FromFields(1, 0, 0), Zero},
		{FromFields(0, 0, 1), Denormal},
		{FromFields(1, 0, mantMask), Denormal},
		{FromFields(0, 1, 0), Normal},
		{FromFields(1, 1023, 12345), Normal},
		{FromFields(0, 2046, mantMask), Normal},
		{FromFields(0, 2047, 0), Infinite},
		{FromFields(1, 2047, 0), Infinite},
		{FromFields(0, 2047, 1), NaN},
		{FromFields(1, 2047, 1<<51), NaN},
		{FromFields(1, 2047, mantMask), NaN},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.cat, test.b.Category())
			a.Equal(test.cat, Classify(test.b.Float64()))
			a.Equal(test.cat != Infinite && test.cat != NaN, test.b.IsFinite())
			a.Equal(test.cat == Normal, test.b.IsNormal())
			a.Equal(test.cat == Denormal, test.b.IsDenormal())
		})
	}
}

func TestCategoryString(t *testing.T) {
	a := assert.New(t)
	a.Equal("Zero", Zero.String())
	a.Equal("Normal", Normal.String())
	a.Equal("Denormal", Denormal.String())
	a.Equal("Infinity", Infinite.String())
	a.Equal("NaN", NaN.String())
	a.Equal("Category(?)", Category(10).String())
}

func TestCategoryExclusive(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(2))
	for i := 0; i < randomPatterns; i++ {
		b := randomBits(r)
		f := b.Float64()
		matches := 0
		for _, is := range []bool{b.IsZero(), b.IsNormal(), b.IsDenormal(), b.IsInf(), b.IsNaN()} {
			if is {
				matches++
			}
		}
		if !a.Equal(1, matches, "%#v", b) {
			return
		}
		a.Equal(math.IsNaN(f), b.IsNaN())
		a.Equal(math.IsInf(f, 0), b.IsInf())
		a.Equal(f == 0, b.IsZero())
		a.Equal(IsFinite(f), !math.IsNaN(f) && !math.IsInf(f, 0))
		if b.IsFinite() && !b.IsZero() {
			a.Equal(math.Abs(f) >= MinNormal, IsNormal(f))
			a.Equal(math.Abs(f) < MinNormal, IsDenormal(f))
		}
	}
}
