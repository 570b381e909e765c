// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest is a BLAKE3 keyed hash of a blob's JSON text.
type Digest [32]byte

// String returns the lowercase hex encoding of the digest.
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// jsonDomainKey keys the digest so it cannot collide with BLAKE3
// hashes of the same bytes computed elsewhere. ASCII of the domain
// name, zero-padded to 32 bytes. Changing it changes every digest.
var jsonDomainKey = [32]byte{
	'b', 'u', 'r', 'e', 'a', 'u', '.', 'b', 'l', 'o', 'b', '.', 'j', 's', 'o', 'n',
}

// Info describes a decoded blob.
type Info struct {
	// Format is the leading tag.
	Format Format

	// PayloadLength is the number of base64 characters kept after
	// noise trimming.
	PayloadLength int

	// NoiseLength is the number of trailing bytes that were dropped.
	NoiseLength int

	// RawLength is the size of the base64-decoded payload, i.e. the
	// compressed size for zstd formats.
	RawLength int

	// JSONLength is the size of the JSON text carried by the blob.
	JSONLength int

	// Digest identifies the JSON text. Two blobs carrying the same
	// JSON text have the same digest regardless of format.
	Digest Digest
}

// Inspect decodes data and reports how it was encoded. It fails
// exactly when Decode would.
func Inspect(data []byte) (Info, error) {
	opened, err := open(data)
	if err != nil {
		return Info{}, err
	}
	if err := validateJSON(opened.text); err != nil {
		return Info{}, err
	}
	return Info{
		Format:        opened.format,
		PayloadLength: len(opened.payload),
		NoiseLength:   opened.noise,
		RawLength:     len(opened.raw),
		JSONLength:    len(opened.text),
		Digest:        digestJSON(opened.text),
	}, nil
}

func digestJSON(text []byte) Digest {
	hasher, err := blake3.NewKeyed(jsonDomainKey[:])
	if err != nil {
		// Only fails for keys that are not 32 bytes.
		panic("blob: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(text)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}
