// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// maxDecodedSize bounds the output of a single zstd decode. Blobs
// arrive from URLs and pasted text, so a tiny frame must not be able
// to claim gigabytes of memory.
const maxDecodedSize = 64 << 20

// The zstd encoder and decoder are created on first use and shared.
// zstd.Encoder.EncodeAll and zstd.Decoder.DecodeAll are safe for
// concurrent use and keep no per-call state between calls.
var (
	zstdEncoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil,
			// Output size matters more than encode speed for
			// strings that end up in URLs.
			zstd.WithEncoderLevel(zstd.SpeedBestCompression),
			// The checksum adds four bytes to every frame. The
			// JSON parse after decompression already rejects
			// corrupted payloads.
			zstd.WithEncoderCRC(false),
		)
	})

	zstdDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil,
			zstd.WithDecoderMaxMemory(maxDecodedSize),
			zstd.WithDecoderMaxWindow(maxDecodedSize),
		)
	})
)

func compressZstd(data []byte) ([]byte, error) {
	encoder, err := zstdEncoder()
	if err != nil {
		return nil, fmt.Errorf("zstd encoder initialization: %w", err)
	}
	return encoder.EncodeAll(data, nil), nil
}

func decompressZstd(compressed []byte) ([]byte, error) {
	decoder, err := zstdDecoder()
	if err != nil {
		return nil, fmt.Errorf("zstd decoder initialization: %w", err)
	}
	result, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return result, nil
}

func identity(data []byte) ([]byte, error) {
	return data, nil
}
