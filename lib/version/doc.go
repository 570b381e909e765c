// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for bureau-blob
// binaries.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//	go build -ldflags "-X github.com/bureau-foundation/bureau-blob/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// When GitCommit is not injected, the VCS revision, dirty flag and
// commit time stamped by the go toolchain are used if present.
// [Current] gathers everything into a [Build]; [Fprint] writes the
// --version line, with toolchain and platform in verbose mode.
package version
