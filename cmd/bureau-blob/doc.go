// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Bureau-blob converts between JSON documents and blobs: short
// printable strings suitable for URLs and log lines (see lib/blob).
//
//	echo '{"hello":"world"}' | bureau-blob encode
//	2eyJoZWxsbyI6IndvcmxkIn0=
//
//	echo '2eyJoZWxsbyI6IndvcmxkIn0=' | bureau-blob decode --pretty
//	{
//	  "hello": "world"
//	}
//
// Commands:
//
//	encode   read JSON, JSONC (--input-format jsonc) or YAML and print a blob
//	decode   read a blob and print the value as JSON or YAML
//	inspect  print the blob's format, payload sizes, and content digest
//
// Input comes from stdin unless --input names a file. Trailing noise
// after a pasted blob (newlines, "&param=..." tails) is ignored by the
// decoder itself.
//
// Exit codes:
//
//	0  success
//	1  input could not be read, parsed, encoded, or decoded
//	2  usage error
//
// Configuration is optional; see lib/config for the file format and
// the BUREAU_BLOB_CONFIG environment variable.
package main
