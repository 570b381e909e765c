// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package blob packs a JSON value into a short printable string and
// back. Blobs are meant for places that only carry text: URL query
// parameters, log lines, single-line form fields.
//
// # Wire format
//
// A blob is one tag byte followed by standard base64 (with '=' padding)
// of the transformed canonical JSON text:
//
//	blob = tag || base64(transform(json))
//
// The tag selects the transform:
//
//	'0'  zstd (legacy tag, decode only)
//	'1'  zstd
//	'2'  identity
//
// Tags are permanent. A blob written by any release decodes with every
// later release; new transforms get new tags.
//
// # Encoding
//
// [Encode] runs every active transform and keeps the shortest output,
// preferring the earlier tag on a tie. Small values come out as '2'
// because a zstd frame header outweighs the savings:
//
//	blob.Encode(map[string]any{"hello": "world"})
//	// "2eyJoZWxsbyI6IndvcmxkIn0="
//
// If any transform fails the whole encode fails. There is no fallback
// to identity.
//
// # Decoding
//
// [Decode] drops everything from the first byte outside the ASCII range
// '+'..'z' onward, so a blob pasted with a trailing newline or a
// following "&key=value" still decodes. The check is a range test, not
// an alphabet test, and the kept prefix is decoded strictly.
//
// Every error matches one of the package sentinels under errors.Is:
// [ErrEmptyInput], [ErrInvalidEncoding], [ErrUnsupportedFormat],
// [ErrTransformFailure], [ErrMalformedJSON], [ErrEncodeTransformFailure]
// or [ErrUnencodableValue].
//
// All functions are safe for concurrent use and hold no state between
// calls.
package blob
