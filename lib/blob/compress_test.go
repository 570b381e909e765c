// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"
)

func TestCompressDecompressZstd(t *testing.T) {
	data := []byte(strings.Repeat(`{"key":"value","count":42},`, 200))

	compressed, err := compressZstd(data)
	if err != nil {
		t.Fatalf("compressZstd: %v", err)
	}
	if len(compressed) >= len(data) {
		t.Errorf("repetitive JSON did not shrink: %d >= %d bytes", len(compressed), len(data))
	}

	decompressed, err := decompressZstd(compressed)
	if err != nil {
		t.Fatalf("decompressZstd: %v", err)
	}
	if !bytes.Equal(decompressed, data) {
		t.Error("zstd roundtrip mismatch")
	}
}

func TestCompressZstdRandomData(t *testing.T) {
	data := make([]byte, 4096)
	if _, err := rand.Read(data); err != nil {
		t.Fatal(err)
	}

	compressed, err := compressZstd(data)
	if err != nil {
		t.Fatalf("compressZstd: %v", err)
	}

	decompressed, err := decompressZstd(compressed)
	if err != nil {
		t.Fatalf("decompressZstd: %v", err)
	}
	if !bytes.Equal(decompressed, data) {
		t.Error("zstd roundtrip mismatch for incompressible data")
	}
}

func TestCompressZstdOmitsChecksum(t *testing.T) {
	compressed, err := compressZstd([]byte(`{"hello":"world"}`))
	if err != nil {
		t.Fatalf("compressZstd: %v", err)
	}
	if len(compressed) < 5 {
		t.Fatalf("frame too short: %d bytes", len(compressed))
	}
	// Frame header descriptor, bit 2: content checksum flag.
	if compressed[4]&0x04 != 0 {
		t.Errorf("frame header descriptor 0x%02x has the checksum flag set", compressed[4])
	}
}

func TestDecompressZstdReferenceFrame(t *testing.T) {
	// Produced by the reference zstd library at level 19. Decoding
	// must accept frames from any conforming encoder, not just ours.
	frame, err := base64.StdEncoding.DecodeString("KLUv/QBoiQAAeyJoZWxsbyI6IndvcmxkIn0=")
	if err != nil {
		t.Fatal(err)
	}

	decompressed, err := decompressZstd(frame)
	if err != nil {
		t.Fatalf("decompressZstd: %v", err)
	}
	if string(decompressed) != `{"hello":"world"}` {
		t.Errorf("decompressed = %q, want %q", decompressed, `{"hello":"world"}`)
	}
}

func TestDecompressZstdCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"not a frame", []byte("definitely not zstd")},
		{"truncated frame", []byte{0x28, 0xb5, 0x2f, 0xfd, 0x00, 0x68, 0x89}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decompressZstd(tt.data); err == nil {
				t.Error("decompressZstd should reject corrupt input")
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	data := []byte(`[1,2,3]`)
	result, err := identity(data)
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	if &result[0] != &data[0] {
		t.Error("identity should return the input slice without copying")
	}
}
