// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bureau-blob/lib/blob"
	"github.com/bureau-foundation/bureau-blob/lib/config"
)

// encodeDocument parses data in the given input syntax and returns the
// blob. JSON and JSONC keep the document's own key order; YAML goes
// through a generic value, so keys come out sorted.
func encodeDocument(data []byte, format string) (string, error) {
	switch format {
	case config.InputJSON:
		return blob.EncodeJSON(bytes.TrimSpace(data))

	case config.InputJSONC:
		return blob.EncodeJSON(bytes.TrimSpace(jsonc.ToJSON(data)))

	case config.InputYAML:
		var document any
		if err := yaml.Unmarshal(data, &document); err != nil {
			return "", fmt.Errorf("parsing YAML input: %w", err)
		}
		normalized, err := fromYAML(document)
		if err != nil {
			return "", err
		}
		return blob.Encode(normalized)

	default:
		return "", fmt.Errorf("%w: unknown input format %q (want json, jsonc, or yaml)", errUsage, format)
	}
}

// fromYAML converts a yaml.v3 generic tree into a JSON-compatible one.
// yaml.v3 produces map[string]any for string-keyed mappings but
// map[any]any when any key is not a string; JSON objects need string
// keys, so those are formatted with fmt.Sprint.
func fromYAML(value any) (any, error) {
	switch typed := value.(type) {
	case map[string]any:
		result := make(map[string]any, len(typed))
		for key, item := range typed {
			converted, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			result[key] = converted
		}
		return result, nil

	case map[any]any:
		result := make(map[string]any, len(typed))
		for key, item := range typed {
			converted, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			result[fmt.Sprint(key)] = converted
		}
		return result, nil

	case []any:
		result := make([]any, len(typed))
		for i, item := range typed {
			converted, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			result[i] = converted
		}
		return result, nil

	case []byte:
		return nil, fmt.Errorf("YAML !!binary values have no JSON representation")

	default:
		return value, nil
	}
}

// renderValue writes a decoded value to w as JSON or YAML.
func renderValue(w io.Writer, value any, format string, pretty bool) error {
	switch format {
	case config.OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		if pretty {
			encoder.SetIndent("", "  ")
		}
		return encoder.Encode(value)

	case config.OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(toYAML(value)); err != nil {
			return fmt.Errorf("writing YAML: %w", err)
		}
		return encoder.Close()

	default:
		return fmt.Errorf("%w: unknown output format %q (want json or yaml)", errUsage, format)
	}
}

// toYAML replaces json.Number leaves with YAML scalar nodes carrying
// the literal digits. yaml.v3 would otherwise quote them as strings,
// and converting to float64 would lose precision on large integers.
func toYAML(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		result := make(map[string]any, len(typed))
		for key, item := range typed {
			result[key] = toYAML(item)
		}
		return result

	case []any:
		result := make([]any, len(typed))
		for i, item := range typed {
			result[i] = toYAML(item)
		}
		return result

	case json.Number:
		return numberNode(typed)

	default:
		return value
	}
}

// numberNode returns a plain scalar when a YAML reader resolves the
// digits to the same kind of number. Integers beyond uint64 resolve
// to !!float and floats beyond float64 range resolve to !!str, so
// those keep an explicit tag to preserve the value's type.
func numberNode(number json.Number) *yaml.Node {
	text := string(number)
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: text}
	if strings.ContainsAny(text, ".eE") {
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			node.Tag = "!!float"
		}
		return node
	}
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return node
	}
	if _, err := strconv.ParseUint(text, 10, 64); err != nil {
		node.Tag = "!!int"
	}
	return node
}
