// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import (
	"errors"
	"fmt"
)

// Every error returned by this package matches exactly one of these
// sentinels under errors.Is. The underlying cause, when there is one,
// is wrapped alongside the sentinel.
var (
	// ErrEmptyInput is returned when Decode is given zero bytes.
	ErrEmptyInput = errors.New("blob: empty input")

	// ErrInvalidEncoding is returned when the payload is not valid
	// standard base64 after trailing noise has been trimmed.
	ErrInvalidEncoding = errors.New("blob: invalid base64 payload")

	// ErrUnsupportedFormat is matched by *UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("blob: unsupported format")

	// ErrTransformFailure is returned when decompressing the payload
	// fails (corrupt frame, size limit exceeded).
	ErrTransformFailure = errors.New("blob: transform failed")

	// ErrMalformedJSON is returned when the decoded bytes are not a
	// single valid JSON value, or when text handed to EncodeJSON is
	// not valid JSON.
	ErrMalformedJSON = errors.New("blob: malformed JSON")

	// ErrEncodeTransformFailure is returned when any candidate
	// transform fails during Encode. The encode is abandoned; no
	// other candidate is substituted.
	ErrEncodeTransformFailure = errors.New("blob: encode transform failed")

	// ErrUnencodableValue is returned when Encode is given a value
	// that encoding/json cannot marshal (channels, functions, NaN).
	ErrUnencodableValue = errors.New("blob: value cannot be marshaled as JSON")
)

// UnsupportedFormatError reports a leading tag byte that is not in
// the format registry.
type UnsupportedFormatError struct {
	Tag Format
}

func (err *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("blob: unsupported format tag %q (0x%02x)", rune(err.Tag), byte(err.Tag))
}

// Is makes errors.Is(err, ErrUnsupportedFormat) hold for any tag.
func (err *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// IsUnsupportedFormat reports whether err was caused by an unknown
// tag, and returns that tag.
func IsUnsupportedFormat(err error) (Format, bool) {
	var formatError *UnsupportedFormatError
	if errors.As(err, &formatError) {
		return formatError.Tag, true
	}
	return 0, false
}
