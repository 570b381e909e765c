// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for bureau-blob
// packages.
//
// [ParseJSON] builds expected values in the same shape blob.Decode
// produces (json.Number for numbers), so round-trip tests compare like
// with like. [RequireJSONEqual] compares two such values with go-cmp
// and prints a readable diff on mismatch.
//
// [WriteFile] drops a fixture file into a per-test temporary
// directory, for config and CLI tests that read from disk.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
