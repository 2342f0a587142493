// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binary64

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	mu "github.com/avdva/binary64/internal/mathutil"
)

const (
	normalPrefix   = " * 0b1."
	denormalPrefix = " * 0b0."
	normalExp      = " * 2**("
	denormalExp    = " * 2**-1022"
	nanPrefix      = "NaN <"
	fieldsDelim    = ", "
	infinity       = "Infinity"
)

// HumanReadable returns a structural representation of x:
//	+0.0, -0.0
//	+1 * 0b1.<52 mantissa bits> * 2**(<raw exponent>-1023)   for normals
//	+1 * 0b0.<52 mantissa bits> * 2**-1022                   for denormals
//	+Infinity, -Infinity
//	NaN <sign bit, 11 exponent bits, 52 mantissa bits>
func HumanReadable(x float64) string {
	return FromFloat64(x).String()
}

// String returns the human-readable form of b, see HumanReadable.
func (b Bits) String() string {
	var builder strings.Builder
	b.toStringsBuilder(&builder)
	return builder.String()
}

// GoString returns debug string representation.
func (b Bits) GoString() string {
	return b.String() + fmt.Sprintf(" {0x%016x}", uint64(b))
}

// BitString returns all three fields as bit strings, separated by spaces, like
//	0 01111111111 0000000000000000000000000000000000000000000000000000
func (b Bits) BitString() string {
	var builder strings.Builder
	mu.WriteBits(&builder, uint64(b.SignBit()), 1)
	builder.WriteByte(' ')
	mu.WriteBits(&builder, uint64(b.ExponentBits()), expBits)
	builder.WriteByte(' ')
	mu.WriteBits(&builder, b.MantissaBits(), mantBits)
	return builder.String()
}

// Format implements fmt.Formatter.
// %v and %s print the human-readable form, %#v prints GoString, %b prints the bit fields,
// %x and %X print the hex bit pattern, %f prints an exact decimal,
// %e and %g format the float64 value honoring the precision.
func (b Bits) Format(fs fmt.State, c rune) {
	switch c {
	case 'b':
		io.WriteString(fs, b.BitString())
	case 'x':
		fmt.Fprintf(fs, "0x%016x", uint64(b))
	case 'X':
		fmt.Fprintf(fs, "0X%016X", uint64(b))
	case 'f':
		io.WriteString(fs, b.exactString())
	case 'e', 'E', 'g', 'G':
		prec, ok := fs.Precision()
		if !ok {
			prec = -1
		}
		io.WriteString(fs, strconv.FormatFloat(b.Float64(), byte(c), prec, 64))
	case 'q':
		io.WriteString(fs, strconv.Quote(b.String()))
	case 'v':
		if fs.Flag('#') {
			io.WriteString(fs, b.GoString())
			return
		}
		fallthrough
	default:
		io.WriteString(fs, b.String())
	}
}

func (b Bits) exactString() string {
	d, err := b.Decimal()
	if err != nil {
		return strconv.FormatFloat(b.Float64(), 'f', -1, 64)
	}
	return d.String()
}

func (b Bits) toStringsBuilder(builder *strings.Builder) {
	s, e, m := b.Split()
	switch b.Category() {
	case Zero:
		builder.WriteString(b.Sign().String())
		builder.WriteString("0.0")
	case Normal:
		builder.WriteString(b.Sign().String())
		builder.WriteRune('1')
		builder.WriteString(normalPrefix)
		mu.WriteBits(builder, m, mantBits)
		builder.WriteString(normalExp)
		builder.WriteString(strconv.Itoa(int(e)))
		builder.WriteRune('-')
		builder.WriteString(strconv.Itoa(bias))
		builder.WriteRune(')')
	case Denormal:
		builder.WriteString(b.Sign().String())
		builder.WriteRune('1')
		builder.WriteString(denormalPrefix)
		mu.WriteBits(builder, m, mantBits)
		builder.WriteString(denormalExp)
	case Infinite:
		builder.WriteString(b.Sign().String())
		builder.WriteString(infinity)
	default:
		builder.WriteString(nanPrefix)
		mu.WriteBits(builder, uint64(s), 1)
		builder.WriteString(fieldsDelim)
		mu.WriteBits(builder, uint64(e), expBits)
		builder.WriteString(fieldsDelim)
		mu.WriteBits(builder, m, mantBits)
		builder.WriteRune('>')
	}
}
