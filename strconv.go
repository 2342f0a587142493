// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binary64

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	mu "github.com/avdva/binary64/internal/mathutil"
)

var (
	// ErrSyntax is wrapped by all errors returned from Parse.
	ErrSyntax = errors.New("invalid syntax")

	normalExpSuffix = "-" + strconv.Itoa(bias) + ")"
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func (pe posError) Unwrap() error {
	return ErrSyntax
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// Parse parses the human-readable form produced by HumanReadable back into a bit pattern.
// Leading and trailing spaces are ignored.
// The NaN form accepts any field values, so it can describe any bit pattern.
func Parse(s string) (Bits, error) {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	offset := len(s) - len(trimmed)
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)
	if len(trimmed) == 0 {
		return 0, fmt.Errorf("empty input: %w", ErrSyntax)
	}
	p := parser{s: trimmed}
	b, err := p.parse()
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return 0, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	return b, nil
}

// MustParse is like Parse, but panics on error.
func MustParse(s string) Bits {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

type parser struct {
	s   string
	pos int
}

func (p *parser) parse() (Bits, error) {
	if p.skip(nanPrefix) {
		return p.parseFields()
	}
	var s number
	switch {
	case p.skip("+"):
	case p.skip("-"):
		s = 1
	default:
		return 0, p.unexpected()
	}
	switch {
	case p.skip("0.0"):
		return fromFields(s, 0, 0), p.end()
	case p.skip(infinity):
		return fromFields(s, maxExpRaw, 0), p.end()
	}
	if err := p.expect("1"); err != nil {
		return 0, err
	}
	if p.skip(denormalPrefix) {
		m, err := p.bits(mantBits)
		if err != nil {
			return 0, err
		}
		if err := p.expect(denormalExp); err != nil {
			return 0, err
		}
		return fromFields(s, 0, m), p.end()
	}
	if err := p.expect(normalPrefix); err != nil {
		return 0, err
	}
	m, err := p.bits(mantBits)
	if err != nil {
		return 0, err
	}
	if err := p.expect(normalExp); err != nil {
		return 0, err
	}
	expPos := p.pos
	e, err := p.unsigned()
	if err != nil {
		return 0, err
	}
	if e == 0 || e >= maxExpRaw {
		return 0, newPosError(fmt.Sprintf("exponent %d out of range", e), expPos)
	}
	if err := p.expect(normalExpSuffix); err != nil {
		return 0, err
	}
	return fromFields(s, e, m), p.end()
}

// parseFields parses "s, eeeeeeeeeee, mmm...>".
func (p *parser) parseFields() (Bits, error) {
	s, err := p.bits(1)
	if err != nil {
		return 0, err
	}
	if err := p.expect(fieldsDelim); err != nil {
		return 0, err
	}
	e, err := p.bits(expBits)
	if err != nil {
		return 0, err
	}
	if err := p.expect(fieldsDelim); err != nil {
		return 0, err
	}
	m, err := p.bits(mantBits)
	if err != nil {
		return 0, err
	}
	if err := p.expect(">"); err != nil {
		return 0, err
	}
	return fromFields(s, e, m), p.end()
}

func (p *parser) skip(lit string) bool {
	if strings.HasPrefix(p.s[p.pos:], lit) {
		p.pos += len(lit)
		return true
	}
	return false
}

func (p *parser) expect(lit string) error {
	if p.skip(lit) {
		return nil
	}
	return newPosError(fmt.Sprintf("expected %q", lit), p.pos)
}

func (p *parser) bits(width int) (uint64, error) {
	end := p.pos + width
	if end > len(p.s) {
		end = len(p.s)
	}
	v, bad := mu.ParseBits(p.s[p.pos:end], width)
	if bad >= 0 {
		p.pos += bad
		return 0, p.unexpected()
	}
	p.pos = end
	return v, nil
}

func (p *parser) unsigned() (uint64, error) {
	start := p.pos
	for p.pos < len(p.s) && '0' <= p.s[p.pos] && p.s[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, p.unexpected()
	}
	v, err := strconv.ParseUint(p.s[start:p.pos], 10, 64)
	if err != nil {
		return 0, newPosError("bad number", start)
	}
	return v, nil
}

func (p *parser) end() error {
	if p.pos < len(p.s) {
		return p.unexpected()
	}
	return nil
}

func (p *parser) unexpected() error {
	if p.pos >= len(p.s) {
		return newPosError("unexpected end of input", p.pos)
	}
	return newPosError(fmt.Sprintf("unexpected symbol %q", p.s[p.pos]), p.pos)
}
