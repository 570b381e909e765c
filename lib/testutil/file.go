// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes content to name inside a fresh per-test temporary
// directory and returns the absolute path. The directory is removed
// when the test completes.
//
//	path := testutil.WriteFile(t, "blob.yaml", "log_level: debug\n")
func WriteFile(t interface {
	Helper()
	TempDir() string
	Fatalf(format string, args ...any)
}, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}
