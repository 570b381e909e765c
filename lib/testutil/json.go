// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"encoding/json"

	"github.com/google/go-cmp/cmp"
)

// ParseJSON parses text into a generic value the same way blob.Decode
// does: objects as map[string]any, arrays as []any, numbers as
// json.Number. Values built this way compare equal to decoded blobs.
//
//	want := testutil.ParseJSON(t, `{"count": 12345678901234567890}`)
func ParseJSON(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, text string) any {
	t.Helper()
	decoder := json.NewDecoder(bytes.NewReader([]byte(text)))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		t.Fatalf("parsing test JSON %q: %v", text, err)
	}
	return value
}

// RequireJSONEqual fails the test when got and want are not
// structurally equal, printing a diff.
func RequireJSONEqual(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, got, want any, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("JSON value mismatch (-want +got): %s\n%s", formatMessage(msgAndArgs), diff)
	}
}
