// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binary64

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	mu "github.com/avdva/binary64/internal/mathutil"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeCompact
)

const (
	// JSONModeHex marshals values as hex bit patterns, like `"0x3ff0000000000000"`.
	JSONModeHex = iota
	// JSONModeFloat marshals finite values as numbers, like `1.5`.
	// Infinities and NaNs are marshaled as in JSONModeFields.
	JSONModeFloat
	// JSONModeFields marshals values as raw fields, like `{"s":0,"e":1023,"m":0}`.
	JSONModeFields
	// JSONModeString marshals values in the human-readable form, see HumanReadable.
	JSONModeString
	// JSONModeCompact is JSONModeFloat for finite values and JSONModeFields otherwise.
	JSONModeCompact
)

var (
	jsonParts = []string{`{"s":`, `,"e":`, `,"m":`, `}`}
	hexPrefix = "0x"
)

type jsonFields struct {
	S uint64 `json:"s"`
	E uint64 `json:"e"`
	M uint64 `json:"m"`
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (b Bits) MarshalJSON() ([]byte, error) {
	return b.toJSON(JSONMode), nil
}

func (b Bits) toJSON(mode int) []byte {
	switch mode {
	case JSONModeHex:
		return []byte(`"` + hexPrefix + fmt.Sprintf("%016x", uint64(b)) + `"`)
	case JSONModeFloat, JSONModeCompact:
		if !b.IsFinite() {
			return b.toJSON(JSONModeFields)
		}
		return []byte(strconv.FormatFloat(b.Float64(), 'g', -1, 64))
	case JSONModeString:
		return []byte(strconv.Quote(b.String()))
	default:
		var builder strings.Builder
		s, e, m := b.Split()
		builder.WriteString(jsonParts[0])
		builder.WriteString(strconv.FormatUint(uint64(s), 10))
		builder.WriteString(jsonParts[1])
		builder.WriteString(strconv.FormatUint(uint64(e), 10))
		builder.WriteString(jsonParts[2])
		builder.WriteString(strconv.FormatUint(m, 10))
		builder.WriteString(jsonParts[3])
		return []byte(builder.String())
	}
}

// UnmarshalJSON unmarshals a number, an object with raw fields,
// a hex bit pattern, or a human-readable string into a value.
func (b *Bits) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case 'n':
		return nil
	case '{':
		var f jsonFields
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		switch {
		case !mu.FitsWidth(f.S, 1):
			return fmt.Errorf("sign bit %d: %w", f.S, ErrOutOfRange)
		case !mu.FitsWidth(f.E, expBits):
			return fmt.Errorf("exponent %d: %w", f.E, ErrOutOfRange)
		case !mu.FitsWidth(f.M, mantBits):
			return fmt.Errorf("mantissa %d: %w", f.M, ErrOutOfRange)
		}
		*b = fromFields(f.S, f.E, f.M)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		value, err := fromJSONString(s)
		if err != nil {
			return err
		}
		*b = value
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*b = FromFloat64(f)
	}
	return nil
}

func fromJSONString(s string) (Bits, error) {
	if len(s) > len(hexPrefix) && strings.EqualFold(s[:len(hexPrefix)], hexPrefix) {
		u, err := strconv.ParseUint(s[len(hexPrefix):], 16, 64)
		if err != nil {
			return 0, err
		}
		return Bits(u), nil
	}
	return Parse(s)
}
