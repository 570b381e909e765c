// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Decode parses a blob produced by Encode (or by any earlier release)
// and returns the JSON value it carries. Objects decode as
// map[string]any, arrays as []any, and numbers as json.Number so that
// integers beyond float64 precision survive unchanged.
//
// Trailing bytes starting at the first byte outside '+'..'z' are
// ignored. That range covers the base64 alphabet and padding, and
// excludes whitespace, '&', '#', '"' and most other delimiters that
// show up when a blob is copied out of a URL or a log line.
func Decode(data []byte) (any, error) {
	opened, err := open(data)
	if err != nil {
		return nil, err
	}
	return parseJSON(opened.text)
}

// DecodeString is Decode for string input.
func DecodeString(blob string) (any, error) {
	return Decode([]byte(blob))
}

// DecodeInto decodes a blob and unmarshals the JSON into target,
// which must be a non-nil pointer.
func DecodeInto(data []byte, target any) error {
	opened, err := open(data)
	if err != nil {
		return err
	}
	if !utf8.Valid(opened.text) {
		return fmt.Errorf("%w: invalid UTF-8", ErrMalformedJSON)
	}
	if err := json.Unmarshal(opened.text, target); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return nil
}

// DecodeJSON decodes a blob and returns the JSON text it carries
// without parsing it into Go values. The text is checked for
// validity.
func DecodeJSON(data []byte) ([]byte, error) {
	opened, err := open(data)
	if err != nil {
		return nil, err
	}
	if err := validateJSON(opened.text); err != nil {
		return nil, err
	}
	return opened.text, nil
}

// openedBlob holds every intermediate stage of a decode.
type openedBlob struct {
	format Format

	// payload is the base64 text that survived noise trimming.
	payload []byte

	// noise is the number of trailing bytes dropped.
	noise int

	// raw is the base64-decoded payload, before the inverse
	// transform.
	raw []byte

	// text is the JSON text after the inverse transform.
	text []byte
}

// open runs the decode pipeline up to, but not including, JSON
// parsing.
func open(data []byte) (openedBlob, error) {
	if len(data) == 0 {
		return openedBlob{}, ErrEmptyInput
	}

	format := Format(data[0])
	entry, ok := lookupFormat(format)
	if !ok {
		return openedBlob{}, &UnsupportedFormatError{Tag: format}
	}

	payload := trimNoise(data[1:])

	raw := make([]byte, base64.StdEncoding.DecodedLen(len(payload)))
	written, err := base64.StdEncoding.Strict().Decode(raw, payload)
	if err != nil {
		return openedBlob{}, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	raw = raw[:written]

	text, err := entry.decode(raw)
	if err != nil {
		return openedBlob{}, fmt.Errorf("%w: %s: %w", ErrTransformFailure, entry.name, err)
	}

	return openedBlob{
		format:  format,
		payload: payload,
		noise:   len(data) - 1 - len(payload),
		raw:     raw,
		text:    text,
	}, nil
}

// trimNoise returns payload up to the first byte outside '+'..'z'.
// This is a cheap range check, not an alphabet check: ',', '-', '.',
// ':', '@', '[', '_' and friends are inside the range and are left for
// the base64 decoder to reject.
func trimNoise(payload []byte) []byte {
	for i, character := range payload {
		if character < '+' || character > 'z' {
			return payload[:i]
		}
	}
	return payload
}

// parseJSON parses exactly one JSON value from text. Anything other
// than whitespace after the value is an error.
func parseJSON(text []byte) (any, error) {
	if !utf8.Valid(text) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformedJSON)
	}

	decoder := json.NewDecoder(bytes.NewReader(text))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no JSON value", ErrMalformedJSON)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedJSON)
	}
	return value, nil
}

func validateJSON(text []byte) error {
	if !utf8.Valid(text) || !json.Valid(text) {
		return fmt.Errorf("%w: payload is not a JSON value", ErrMalformedJSON)
	}
	return nil
}
