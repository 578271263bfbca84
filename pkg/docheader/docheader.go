// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

// Package docheader renders the canonical text form of a configuration file:
// a commented header and usage notes, followed by every declared option with
// its metadata and current value. Files written by a manager always pass
// through this rendering, so hand edits are normalized on the next load.
package docheader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/configcraft/configcraft/pkg/schema"
	"github.com/configcraft/configcraft/pkg/values"
	"github.com/configcraft/configcraft/pkg/versions"
)

// DefaultDescription is the usage note written under the header of every
// generated file.
const DefaultDescription = `This file was generated from its option declarations and is rewritten on
every change. Comments are regenerated; do not rely on hand-written ones.

Values use a strict literal notation:
  text      "quoted, with \" and \\ escapes"
  integer   42
  decimal   3.14 (a decimal point with digits on both sides)
  boolean   true or false
  list      ["a", "b"]
  dict      {"key": "value"}
An empty value or the word null clears an optional option.`

// DefaultHeader returns the standard first header line.
func DefaultHeader() string {
	return fmt.Sprintf("configcraft - Version: %s", versions.GetVersionInfo().Version)
}

// LookupFunc returns the current value for a declared option.
type LookupFunc func(section, option string) values.Value

// Generator renders configuration files with a fixed header and description.
// The zero value is not useful; use New.
type Generator struct {
	Header      string
	Description string
}

// New returns a Generator with the default header and description.
func New() *Generator {
	return &Generator{
		Header:      DefaultHeader(),
		Description: DefaultDescription,
	}
}

// Render produces the full configuration file text for the schema, reading
// each option's current value through lookup. Sections and options appear in
// declaration order.
func (g *Generator) Render(s *schema.Schema, lookup LookupFunc) string {
	var sb strings.Builder

	writeComment(&sb, g.Header)
	if g.Description != "" {
		sb.WriteString("#\n")
		writeComment(&sb, g.Description)
	}
	sb.WriteString("\n")

	blueprints := s.Blueprints()
	for _, section := range s.Sections() {
		sb.WriteString("[" + section + "]\n")
		for _, b := range blueprints {
			if b.Section() != section {
				continue
			}
			if desc := b.Description(); desc != "" {
				writeComment(&sb, desc)
			}
			sb.WriteString("# Type: " + typeLabel(b) + "\n")
			sb.WriteString("# Default: " + renderLiteral(b.Default()) + "\n")
			if min, ok := b.Minimum(); ok {
				sb.WriteString("# Minimum: " + formatBound(min) + "\n")
			}
			if max, ok := b.Maximum(); ok {
				sb.WriteString("# Maximum: " + formatBound(max) + "\n")
			}
			if labels := patternLabels(b); len(labels) > 0 {
				sb.WriteString("# Formats: " + strings.Join(labels, ", ") + "\n")
			}
			sb.WriteString(b.Option() + " = " + renderLiteral(lookup(b.Section(), b.Option())) + "\n\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeComment(sb *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			sb.WriteString("#\n")
			continue
		}
		sb.WriteString("# " + line + "\n")
	}
}

// renderLiteral is like values.EncodeIndent except that null is spelled out,
// keeping generated files explicit about cleared options.
func renderLiteral(v values.Value) string {
	if v.IsNull() {
		return "null"
	}
	return values.EncodeIndent(v)
}

func typeLabel(b *schema.Blueprint) string {
	var parts []string
	for _, k := range b.Kinds().Kinds() {
		switch k {
		case values.KindList:
			parts = append(parts, "List"+itemHint(b.ItemKinds()))
		case values.KindDict:
			parts = append(parts, "Dictionary"+itemHint(b.ItemKinds()))
		default:
			parts = append(parts, k.String())
		}
	}
	return strings.Join(parts, " | ")
}

// itemHint renders the element-kind restriction of a container, or nothing
// when any kind is allowed.
func itemHint(items values.KindSet) string {
	if items == values.AllKinds() {
		return ""
	}
	var labels []string
	for _, k := range items.Kinds() {
		labels = append(labels, k.String())
	}
	return "[" + strings.Join(labels, " | ") + "]"
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func patternLabels(b *schema.Blueprint) []string {
	var labels []string
	for _, p := range b.Patterns() {
		labels = append(labels, p.Label)
	}
	return labels
}
