// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

const indentWidth = 4

// Encode returns the single-line canonical literal for a value. A top-level
// null encodes to empty text; nested nulls use the keyword form. The result
// always satisfies the round-trip law: Decode(Encode(v)) == v.
func Encode(v Value) string {
	if v.IsNull() {
		return ""
	}
	var b strings.Builder
	encodeValue(&b, v, false, 0)
	return b.String()
}

// EncodeIndent returns the pretty-printed literal used when writing files:
// lists and dictionaries span multiple lines with one item per line and
// four-space indentation. Scalars encode exactly as Encode does.
func EncodeIndent(v Value) string {
	if v.IsNull() {
		return ""
	}
	var b strings.Builder
	encodeValue(&b, v, true, 0)
	return b.String()
}

func encodeValue(b *strings.Builder, v Value, indent bool, depth int) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindText:
		encodeText(b, v.text)
	case KindInteger:
		b.WriteString(strconv.FormatInt(v.integer, 10))
	case KindDecimal:
		b.WriteString(formatDecimal(v.decimal))
	case KindBoolean:
		if v.boolean {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindList:
		encodeList(b, v.list, indent, depth)
	case KindDict:
		encodeDict(b, v.dict, indent, depth)
	}
}

// formatDecimal renders a decimal with at least one fractional digit and
// never in exponent notation, so the literal always contains the '.' that
// separates the Decimal kind from Integer at parse time.
func formatDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func encodeText(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else if r > 0xffff {
				// Characters outside the BMP round-trip as a surrogate pair.
				r1, r2 := utf16.EncodeRune(r)
				fmt.Fprintf(b, `\u%04x\u%04x`, r1, r2)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

func encodeList(b *strings.Builder, items []Value, indent bool, depth int) {
	if len(items) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
			if !indent {
				b.WriteByte(' ')
			}
		}
		if indent {
			b.WriteByte('\n')
			writeIndent(b, depth+1)
		}
		encodeValue(b, item, indent, depth+1)
	}
	if indent {
		b.WriteByte('\n')
		writeIndent(b, depth)
	}
	b.WriteByte(']')
}

func encodeDict(b *strings.Builder, entries []Entry, indent bool, depth int) {
	if len(entries) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(',')
			if !indent {
				b.WriteByte(' ')
			}
		}
		if indent {
			b.WriteByte('\n')
			writeIndent(b, depth+1)
		}
		encodeText(b, e.Key)
		b.WriteString(": ")
		encodeValue(b, e.Value, indent, depth+1)
	}
	if indent {
		b.WriteByte('\n')
		writeIndent(b, depth)
	}
	b.WriteByte('}')
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth*indentWidth; i++ {
		b.WriteByte(' ')
	}
}
