// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"strings"
)

// assignment is one provisional option assignment scanned from the file,
// before the literal is decoded against the schema.
type assignment struct {
	section string
	option  string
	literal string
	// line is the 1-based line number where the assignment starts.
	line int
}

// scanAssignments splits the raw text into a stream of (section, option,
// literal) triples. Grammar: `[section]` header lines, `option = literal`
// assignment lines, and `#` or `;` full-line comments. There are no inline
// comments after a value: a list or dictionary literal may continue across
// the following lines, and it ends exactly when its delimiters balance.
func scanAssignments(text string) ([]assignment, error) {
	lines := strings.Split(text, "\n")
	var out []assignment
	section := ""

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(strings.TrimSuffix(lines[i], "\r"))
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if name, ok := sectionName(line); ok {
			section = name
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return nil, &ParseError{Section: section, Line: i + 1,
				Err: errStrayLine}
		}
		a := assignment{
			section: section,
			option:  strings.TrimSpace(line[:eq]),
			literal: strings.TrimSpace(line[eq+1:]),
			line:    i + 1,
		}
		// Consume continuation lines until the literal's delimiters balance.
		for !literalComplete(a.literal) {
			i++
			if i >= len(lines) {
				return nil, &ParseError{Section: a.section, Option: a.option, Line: a.line,
					Err: errUnterminatedLiteral}
			}
			a.literal += "\n" + strings.TrimSuffix(lines[i], "\r")
		}
		out = append(out, a)
	}
	return out, nil
}

func sectionName(line string) (string, bool) {
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", false
	}
	return strings.TrimSpace(line[1 : len(line)-1]), true
}

// literalComplete reports whether the literal text closes every bracket,
// brace and quote it opens. Escapes inside strings are respected. Text with
// more closers than openers counts as complete; the decoder reports the
// actual syntax error with better context.
func literalComplete(literal string) bool {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth < 0 {
				return true
			}
		}
	}
	return depth == 0 && !inString
}
