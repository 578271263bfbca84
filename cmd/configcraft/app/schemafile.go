// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/configcraft/configcraft/pkg/schema"
	"github.com/configcraft/configcraft/pkg/values"
)

// schemaFile is the YAML shape of a schema declaration file. Default and
// bound fields carry literals in the configuration notation, not YAML values,
// so "8080" and "[\"a\"]" mean the same thing they would in a generated file.
type schemaFile struct {
	Options []optionDecl `yaml:"options"`
}

type optionDecl struct {
	Section     string       `yaml:"section"`
	Option      string       `yaml:"option"`
	Types       []string     `yaml:"types"`
	Items       []string     `yaml:"items,omitempty"`
	Default     string       `yaml:"default,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Minimum     string       `yaml:"minimum,omitempty"`
	Maximum     string       `yaml:"maximum,omitempty"`
	Formats     []formatDecl `yaml:"formats,omitempty"`
}

type formatDecl struct {
	Label   string `yaml:"label"`
	Pattern string `yaml:"pattern"`
}

var kindNames = map[string]values.Kind{
	"null":    values.KindNull,
	"text":    values.KindText,
	"integer": values.KindInteger,
	"decimal": values.KindDecimal,
	"boolean": values.KindBoolean,
	"list":    values.KindList,
	"dict":    values.KindDict,
}

// LoadSchemaFile reads a YAML schema declaration file and builds the schema.
func LoadSchemaFile(path string) (*schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var file schemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}
	if len(file.Options) == 0 {
		return nil, fmt.Errorf("schema file %s declares no options", path)
	}

	s := schema.New()
	for _, decl := range file.Options {
		b, err := buildBlueprint(decl)
		if err != nil {
			return nil, fmt.Errorf("schema file %s: %w", path, err)
		}
		if err := s.Add(b); err != nil {
			return nil, fmt.Errorf("schema file %s: %w", path, err)
		}
	}
	return s, nil
}

func buildBlueprint(decl optionDecl) (*schema.Blueprint, error) {
	kinds, err := parseKinds(decl.Types)
	if err != nil {
		return nil, fmt.Errorf("option %s.%s: %w", decl.Section, decl.Option, err)
	}

	var opts []schema.Option
	if decl.Description != "" {
		opts = append(opts, schema.WithDescription(decl.Description))
	}
	if len(decl.Items) > 0 {
		items, err := parseKinds(decl.Items)
		if err != nil {
			return nil, fmt.Errorf("option %s.%s items: %w", decl.Section, decl.Option, err)
		}
		opts = append(opts, schema.WithItemKinds(items))
	}
	if decl.Default != "" {
		def, err := values.Decode(decl.Default, values.KindSet{})
		if err != nil {
			return nil, fmt.Errorf("option %s.%s default: %w", decl.Section, decl.Option, err)
		}
		opts = append(opts, schema.WithDefault(def))
	}
	if decl.Minimum != "" {
		minimum, err := parseBound(decl.Minimum)
		if err != nil {
			return nil, fmt.Errorf("option %s.%s minimum: %w", decl.Section, decl.Option, err)
		}
		opts = append(opts, schema.WithMinimum(minimum))
	}
	if decl.Maximum != "" {
		maximum, err := parseBound(decl.Maximum)
		if err != nil {
			return nil, fmt.Errorf("option %s.%s maximum: %w", decl.Section, decl.Option, err)
		}
		opts = append(opts, schema.WithMaximum(maximum))
	}
	for _, format := range decl.Formats {
		opts = append(opts, schema.WithPattern(format.Label, format.Pattern))
	}

	return schema.NewBlueprint(decl.Section, decl.Option, kinds, opts...)
}

func parseKinds(names []string) (values.KindSet, error) {
	if len(names) == 0 {
		return values.KindSet{}, fmt.Errorf("at least one type is required")
	}
	var kinds []values.Kind
	for _, name := range names {
		k, ok := kindNames[name]
		if !ok {
			return values.KindSet{}, fmt.Errorf("unknown type %q", name)
		}
		kinds = append(kinds, k)
	}
	return values.NewKindSet(kinds...), nil
}

// parseBound decodes a numeric bound given as an integer or decimal literal.
func parseBound(literal string) (float64, error) {
	v, err := values.Decode(literal, values.NewKindSet(values.KindInteger, values.KindDecimal))
	if err != nil {
		return 0, err
	}
	n, _ := v.AsNumber()
	return n, nil
}
