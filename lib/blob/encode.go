// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Encode serializes value to compact JSON and returns the shortest
// blob among the encoder's candidate formats.
//
// value may be anything encoding/json can marshal. Map keys are
// sorted by encoding/json, so output is byte-stable for a given value
// within this implementation; other JSON libraries may order keys
// differently and produce a different (equally valid) blob.
func Encode(value any) (string, error) {
	encoded, err := EncodeBytes(value)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// EncodeBytes is Encode returning a byte slice.
func EncodeBytes(value any) ([]byte, error) {
	text, err := canonicalJSON(value)
	if err != nil {
		return nil, err
	}
	return encodeText(text, encodeOrder)
}

// EncodeJSON encodes JSON text that has already been serialized. The
// text is validated and compacted first, so insignificant whitespace
// does not reach the blob.
func EncodeJSON(text []byte) (string, error) {
	if !utf8.Valid(text) || !json.Valid(text) {
		return "", fmt.Errorf("%w: input is not a JSON value", ErrMalformedJSON)
	}
	var compacted bytes.Buffer
	if err := json.Compact(&compacted, text); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	encoded, err := encodeText(compacted.Bytes(), encodeOrder)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// canonicalJSON marshals value without HTML escaping and without the
// trailing newline json.Encoder appends.
func canonicalJSON(value any) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnencodableValue, err)
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte{'\n'}), nil
}

// candidate is one transform's output for the current encode.
type candidate struct {
	format Format
	raw    []byte
}

// encodeText runs every candidate transform over text, keeps the
// shortest result, and returns tag || base64(result).
func encodeText(text []byte, candidates []formatEntry) ([]byte, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidate formats", ErrEncodeTransformFailure)
	}

	outputs := make([]candidate, 0, len(candidates))
	for _, entry := range candidates {
		raw, err := entry.encode(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrEncodeTransformFailure, entry.name, err)
		}
		outputs = append(outputs, candidate{format: entry.format, raw: raw})
	}

	best := pickShortest(outputs)

	encoded := make([]byte, 1+base64.StdEncoding.EncodedLen(len(best.raw)))
	encoded[0] = byte(best.format)
	base64.StdEncoding.Encode(encoded[1:], best.raw)
	return encoded, nil
}

// pickShortest folds left to right, replacing the current choice only
// when a later candidate is strictly shorter. Equal lengths therefore
// resolve to the earliest candidate. candidates must be non-empty.
func pickShortest(candidates []candidate) candidate {
	best := candidates[0]
	for _, current := range candidates[1:] {
		if len(current.raw) < len(best.raw) {
			best = current
		}
	}
	return best
}
