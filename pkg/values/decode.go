// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Decode parses a literal into a value and checks the decoded kind against
// the accepted set. An empty set accepts every kind. The grammar is strict:
// booleans are case-sensitive (`True` is malformed, not a boolean), integers
// must not contain a decimal point, decimals must carry digits on both sides
// of the point, and trailing tokens after a complete literal are an error.
// Empty text and the keyword `null` both decode to the null value.
func Decode(text string, want KindSet) (Value, error) {
	d := &decoder{src: text}
	d.skipSpace()
	if d.eof() {
		return checkKind(Null(), want)
	}
	v, err := d.parseValue()
	if err != nil {
		return Value{}, err
	}
	d.skipSpace()
	if !d.eof() {
		return Value{}, newMalformedError(d.pos, "unexpected trailing characters after literal")
	}
	return checkKind(v, want)
}

func checkKind(v Value, want KindSet) (Value, error) {
	if want.Empty() || want.Contains(v.Kind()) {
		return v, nil
	}
	return Value{}, newKindMismatchError(v.Kind(), want)
}

type decoder struct {
	src string
	pos int
}

func (d *decoder) eof() bool {
	return d.pos >= len(d.src)
}

func (d *decoder) peek() byte {
	return d.src[d.pos]
}

func (d *decoder) skipSpace() {
	for !d.eof() {
		switch d.src[d.pos] {
		case ' ', '\t', '\n', '\r':
			d.pos++
		default:
			return
		}
	}
}

func (d *decoder) parseValue() (Value, error) {
	if d.eof() {
		return Value{}, newMalformedError(d.pos, "unexpected end of literal")
	}
	switch c := d.peek(); {
	case c == '"':
		return d.parseString()
	case c == '[':
		return d.parseList()
	case c == '{':
		return d.parseDict()
	case c == 't':
		return d.parseKeyword("true", Boolean(true))
	case c == 'f':
		return d.parseKeyword("false", Boolean(false))
	case c == 'n':
		return d.parseKeyword("null", Null())
	case c == '-' || (c >= '0' && c <= '9'):
		return d.parseNumber()
	default:
		return Value{}, newMalformedError(d.pos, "unexpected character %q", rune(c))
	}
}

// parseKeyword matches an exact keyword. Any other spelling, including a
// different casing, is malformed rather than a near-miss of the keyword.
func (d *decoder) parseKeyword(keyword string, v Value) (Value, error) {
	if !strings.HasPrefix(d.src[d.pos:], keyword) {
		return Value{}, newMalformedError(d.pos, "unknown keyword")
	}
	end := d.pos + len(keyword)
	if end < len(d.src) && isWordChar(d.src[end]) {
		return Value{}, newMalformedError(d.pos, "unknown keyword")
	}
	d.pos = end
	return v, nil
}

func isWordChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (d *decoder) parseNumber() (Value, error) {
	start := d.pos
	if d.peek() == '-' {
		d.pos++
	}
	intDigits := d.consumeDigits()
	if intDigits == 0 {
		return Value{}, newMalformedError(d.pos, "digit expected")
	}
	isDecimal := false
	if !d.eof() && d.peek() == '.' {
		isDecimal = true
		d.pos++
		if d.consumeDigits() == 0 {
			return Value{}, newMalformedError(d.pos, "digit expected after decimal point")
		}
	}
	raw := d.src[start:d.pos]
	if isDecimal {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, newMalformedError(start, "invalid decimal %q", raw)
		}
		return Decimal(f), nil
	}
	i, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Value{}, newMalformedError(start, "integer %q out of 64-bit range", raw)
	}
	return Integer(i), nil
}

func (d *decoder) consumeDigits() int {
	n := 0
	for !d.eof() && d.peek() >= '0' && d.peek() <= '9' {
		d.pos++
		n++
	}
	return n
}

func (d *decoder) parseString() (Value, error) {
	s, err := d.parseStringText()
	if err != nil {
		return Value{}, err
	}
	return Text(s), nil
}

func (d *decoder) parseStringText() (string, error) {
	start := d.pos
	d.pos++ // opening quote
	var b strings.Builder
	for {
		if d.eof() {
			return "", newMalformedError(start, "unterminated string")
		}
		c := d.peek()
		switch {
		case c == '"':
			d.pos++
			return b.String(), nil
		case c == '\\':
			if err := d.parseEscape(&b); err != nil {
				return "", err
			}
		case c < 0x20:
			return "", newMalformedError(d.pos, "unescaped control character in string")
		default:
			r, size := utf8.DecodeRuneInString(d.src[d.pos:])
			b.WriteRune(r)
			d.pos += size
		}
	}
}

func (d *decoder) parseEscape(b *strings.Builder) error {
	start := d.pos
	d.pos++ // backslash
	if d.eof() {
		return newMalformedError(start, "unterminated escape sequence")
	}
	c := d.peek()
	d.pos++
	switch c {
	case '"':
		b.WriteByte('"')
	case '\\':
		b.WriteByte('\\')
	case '/':
		b.WriteByte('/')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r, err := d.parseUnicodeEscape(start)
		if err != nil {
			return err
		}
		b.WriteRune(r)
	default:
		return newMalformedError(start, "invalid escape sequence %q", `\`+string(rune(c)))
	}
	return nil
}

func (d *decoder) parseUnicodeEscape(start int) (rune, error) {
	r1, err := d.parseHex4(start)
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(r1) {
		return r1, nil
	}
	// A high surrogate must be followed by an escaped low surrogate.
	if strings.HasPrefix(d.src[d.pos:], `\u`) {
		save := d.pos
		d.pos += 2
		r2, err := d.parseHex4(start)
		if err != nil {
			return 0, err
		}
		if r := utf16.DecodeRune(r1, r2); r != utf8.RuneError {
			return r, nil
		}
		d.pos = save
	}
	return utf8.RuneError, nil
}

func (d *decoder) parseHex4(start int) (rune, error) {
	if d.pos+4 > len(d.src) {
		return 0, newMalformedError(start, "unterminated unicode escape")
	}
	raw := d.src[d.pos : d.pos+4]
	n, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, newMalformedError(start, "invalid unicode escape %q", `\u`+raw)
	}
	d.pos += 4
	return rune(n), nil
}

func (d *decoder) parseList() (Value, error) {
	start := d.pos
	d.pos++ // opening bracket
	var items []Value
	d.skipSpace()
	if d.eof() {
		return Value{}, newMalformedError(start, "unterminated list")
	}
	if d.peek() == ']' {
		d.pos++
		return List(), nil
	}
	for {
		item, err := d.parseValue()
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
		d.skipSpace()
		if d.eof() {
			return Value{}, newMalformedError(start, "unterminated list")
		}
		switch d.peek() {
		case ',':
			d.pos++
			d.skipSpace()
		case ']':
			d.pos++
			return Value{kind: KindList, list: items}, nil
		default:
			return Value{}, newMalformedError(d.pos, "expected ',' or ']' in list")
		}
	}
}

func (d *decoder) parseDict() (Value, error) {
	start := d.pos
	d.pos++ // opening brace
	var entries []Entry
	d.skipSpace()
	if d.eof() {
		return Value{}, newMalformedError(start, "unterminated dictionary")
	}
	if d.peek() == '}' {
		d.pos++
		return Dict(), nil
	}
	for {
		if d.eof() || d.peek() != '"' {
			return Value{}, newMalformedError(d.pos, "dictionary key must be a quoted string")
		}
		key, err := d.parseStringText()
		if err != nil {
			return Value{}, err
		}
		d.skipSpace()
		if d.eof() || d.peek() != ':' {
			return Value{}, newMalformedError(d.pos, "expected ':' after dictionary key")
		}
		d.pos++
		d.skipSpace()
		v, err := d.parseValue()
		if err != nil {
			return Value{}, err
		}
		// Duplicate keys keep their first position and take the last value.
		if i := entryIndex(entries, key); i >= 0 {
			entries[i].Value = v
		} else {
			entries = append(entries, Entry{Key: key, Value: v})
		}
		d.skipSpace()
		if d.eof() {
			return Value{}, newMalformedError(start, "unterminated dictionary")
		}
		switch d.peek() {
		case ',':
			d.pos++
			d.skipSpace()
		case '}':
			d.pos++
			return Value{kind: KindDict, dict: entries}, nil
		default:
			return Value{}, newMalformedError(d.pos, "expected ',' or '}' in dictionary")
		}
	}
}
