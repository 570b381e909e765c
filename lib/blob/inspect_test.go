// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import (
	"errors"
	"strings"
	"testing"
)

func TestInspectHelloWorld(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		format    Format
		payload   int
		noise     int
		rawLength int
	}{
		{"identity", helloIdentity, FormatIdentity, 24, 0, 17},
		{"zstd", helloZstd, FormatZstd, 36, 0, 26},
		{"legacy", helloLegacy, FormatLegacyZstd, 36, 0, 26},
		{"zstd with noise", helloZstd + "&1312", FormatZstd, 36, 5, 26},
		{"identity with newline", helloIdentity + "\n", FormatIdentity, 24, 1, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Inspect([]byte(tt.input))
			if err != nil {
				t.Fatalf("Inspect(%q): %v", tt.input, err)
			}
			if info.Format != tt.format {
				t.Errorf("Format = %s, want %s", info.Format, tt.format)
			}
			if info.PayloadLength != tt.payload {
				t.Errorf("PayloadLength = %d, want %d", info.PayloadLength, tt.payload)
			}
			if info.NoiseLength != tt.noise {
				t.Errorf("NoiseLength = %d, want %d", info.NoiseLength, tt.noise)
			}
			if info.RawLength != tt.rawLength {
				t.Errorf("RawLength = %d, want %d", info.RawLength, tt.rawLength)
			}
			if info.JSONLength != len(`{"hello":"world"}`) {
				t.Errorf("JSONLength = %d, want %d", info.JSONLength, len(`{"hello":"world"}`))
			}
		})
	}
}

func TestInspectDigestIndependentOfFormat(t *testing.T) {
	var digests []Digest
	for _, input := range []string{helloIdentity, helloZstd, helloLegacy, helloZstd + "\n"} {
		info, err := Inspect([]byte(input))
		if err != nil {
			t.Fatalf("Inspect(%q): %v", input, err)
		}
		digests = append(digests, info.Digest)
	}
	for i := 1; i < len(digests); i++ {
		if digests[i] != digests[0] {
			t.Errorf("digest %d = %s, want %s", i, digests[i], digests[0])
		}
	}
	if digests[0] != digestJSON([]byte(`{"hello":"world"}`)) {
		t.Errorf("digest = %s, want digest of the JSON text", digests[0])
	}
}

func TestInspectDigestDistinguishesValues(t *testing.T) {
	first := digestJSON([]byte(`{"a":1}`))
	second := digestJSON([]byte(`{"a":2}`))
	if first == second {
		t.Error("different JSON texts produced the same digest")
	}
}

func TestDigestString(t *testing.T) {
	digest := digestJSON([]byte(`null`))
	text := digest.String()
	if len(text) != 64 {
		t.Errorf("digest string length = %d, want 64", len(text))
	}
	if strings.ToLower(text) != text {
		t.Errorf("digest string %q is not lowercase hex", text)
	}
}

func TestInspectErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyInput},
		{"unknown tag", "5abcd", ErrUnsupportedFormat},
		{"bad base64", "2abc", ErrInvalidEncoding},
		{"not zstd", "1eyJoZWxsbyI6IndvcmxkIn0=", ErrTransformFailure},
		{"not json", "2aGVsbG8=", ErrMalformedJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Inspect([]byte(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Inspect(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}
