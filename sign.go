package binary64

// Sign is the sign of a binary64 value, either Positive or Negative.
type Sign int8

const (
	// Positive is a sign of values with the sign bit cleared.
	Positive Sign = 1
	// Negative is a sign of values with the sign bit set.
	Negative Sign = -1
)

func signFromBit(bit uint) Sign {
	if bit&1 == 1 {
		return Negative
	}
	return Positive
}

// SignOf returns the sign of x, including the sign of zeros and NaNs.
func SignOf(x float64) Sign {
	return FromFloat64(x).Sign()
}

// Bit returns 1 for Negative and 0 otherwise.
// Any negative Sign value is treated as Negative.
func (s Sign) Bit() uint {
	if s < 0 {
		return 1
	}
	return 0
}

// Int returns -1 or 1.
func (s Sign) Int() int {
	if s < 0 {
		return -1
	}
	return 1
}

// Neg returns the opposite sign.
func (s Sign) Neg() Sign {
	if s < 0 {
		return Positive
	}
	return Negative
}

// String returns "+" or "-".
func (s Sign) String() string {
	if s < 0 {
		return "-"
	}
	return "+"
}
