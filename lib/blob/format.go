// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import "fmt"

// Format is the leading tag byte of a blob. It selects the transform
// applied to the canonical JSON text before base64 encoding. Format
// values are protocol constants: once a tag has been emitted by any
// release its meaning never changes, and new tags are only appended.
type Format byte

const (
	// FormatLegacyZstd is the tag written by the first, zstd-only
	// release. Decoders accept it and treat it exactly like
	// FormatZstd. It is never emitted.
	FormatLegacyZstd Format = '0'

	// FormatZstd indicates a zstd frame wrapping the JSON text.
	FormatZstd Format = '1'

	// FormatIdentity indicates the JSON text stored as-is. Small
	// values almost always use this format because a zstd frame
	// header costs more than compression saves.
	FormatIdentity Format = '2'
)

// transformFunc maps one byte slice to another. Encode transforms run
// on canonical JSON text; decode transforms run on base64-decoded
// payload bytes.
type transformFunc func([]byte) ([]byte, error)

// formatEntry is one row of the format registry. A nil encode marks a
// decode-only format.
type formatEntry struct {
	format Format
	name   string
	encode transformFunc
	decode transformFunc
}

// registry lists every format the decoder understands, in tag order.
var registry = []formatEntry{
	{format: FormatLegacyZstd, name: "zstd-legacy", decode: decompressZstd},
	{format: FormatZstd, name: "zstd", encode: compressZstd, decode: decompressZstd},
	{format: FormatIdentity, name: "identity", encode: identity, decode: identity},
}

// encodeOrder is the encoder's candidate set. Order matters: when two
// candidates produce the same length, the earlier one wins.
var encodeOrder = []formatEntry{
	registry[1],
	registry[2],
}

func lookupFormat(format Format) (formatEntry, bool) {
	for _, entry := range registry {
		if entry.format == format {
			return entry, true
		}
	}
	return formatEntry{}, false
}

// String returns the registry name of the format, or "unknown(0xNN)"
// for tags the decoder does not understand.
func (format Format) String() string {
	if entry, ok := lookupFormat(format); ok {
		return entry.name
	}
	return fmt.Sprintf("unknown(0x%02x)", byte(format))
}

// Valid reports whether the decoder understands this tag.
func (format Format) Valid() bool {
	_, ok := lookupFormat(format)
	return ok
}

// Emitted reports whether the encoder can produce this tag.
func (format Format) Emitted() bool {
	for _, entry := range encodeOrder {
		if entry.format == format {
			return true
		}
	}
	return false
}

// ParseFormat parses a format from its registry name.
func ParseFormat(name string) (Format, error) {
	for _, entry := range registry {
		if entry.name == name {
			return entry.format, nil
		}
	}
	return 0, fmt.Errorf("unknown blob format: %q", name)
}

// Formats returns every registered format in tag order.
func Formats() []Format {
	formats := make([]Format, len(registry))
	for i, entry := range registry {
		formats[i] = entry.format
	}
	return formats
}
