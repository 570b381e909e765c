// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the bureau-blob
// command.
//
// Configuration is loaded from a single YAML file named by:
//   - the --config flag, or
//   - the BUREAU_BLOB_CONFIG environment variable.
//
// There is no automatic discovery. When neither is set, [Default] is
// used unchanged, so the command works with no configuration at all.
//
// String values may reference environment variables as ${VAR} or
// ${VAR:-default}. Expansion happens after parsing and before
// validation.
//
// The codec in lib/blob takes no configuration; everything here shapes
// the command-line surface only (input parsing, output rendering,
// logging).
package config
