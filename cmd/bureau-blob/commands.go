// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bureau-blob/lib/blob"
	"github.com/bureau-foundation/bureau-blob/lib/config"
)

func encodeFlags(flagSet *pflag.FlagSet, opts *options) {
	flagSet.StringVarP(&opts.inputFormat, "input-format", "f", "",
		"input syntax: json, jsonc, or yaml (default: from config, else json)")
}

func runEncode(inv *invocation) error {
	format := inv.options.inputFormat
	if format == "" {
		format = inv.config.Encode.InputFormat
	}
	if !validInputFormat(format) {
		return fmt.Errorf("%w: unknown input format %q (want json, jsonc, or yaml)", errUsage, format)
	}

	data, err := inv.readInput()
	if err != nil {
		return err
	}

	encoded, err := encodeDocument(data, format)
	if err != nil {
		return err
	}

	inv.logger.Debug("encoded document",
		"input_format", format,
		"input_bytes", len(data),
		"format", blob.Format(encoded[0]).String(),
		"blob_length", len(encoded),
	)
	_, err = fmt.Fprintln(inv.stdout, encoded)
	return err
}

func decodeFlags(flagSet *pflag.FlagSet, opts *options) {
	flagSet.StringVarP(&opts.outputFormat, "output-format", "o", "",
		"output syntax: json or yaml (default: from config, else json)")
	flagSet.BoolVarP(&opts.pretty, "pretty", "p", false, "indent JSON output")
}

func runDecode(inv *invocation) error {
	format := inv.options.outputFormat
	if format == "" {
		format = inv.config.Decode.OutputFormat
	}
	if !validOutputFormat(format) {
		return fmt.Errorf("%w: unknown output format %q (want json or yaml)", errUsage, format)
	}
	pretty := inv.config.Decode.Pretty
	if inv.flags.Changed("pretty") {
		pretty = inv.options.pretty
	}

	data, err := inv.readInput()
	if err != nil {
		return err
	}

	value, err := blob.Decode(data)
	if err != nil {
		return err
	}

	inv.logger.Debug("decoded blob",
		"format", blob.Format(data[0]).String(),
		"input_bytes", len(data),
	)
	return renderValue(inv.stdout, value, format, pretty)
}

func inspectFlags(flagSet *pflag.FlagSet, opts *options) {
	flagSet.BoolVar(&opts.jsonOutput, "json", false, "print the report as JSON")
}

// inspectReport is the --json form of blob.Info.
type inspectReport struct {
	Format        string `json:"format"`
	Tag           string `json:"tag"`
	PayloadLength int    `json:"payload_length"`
	NoiseLength   int    `json:"noise_length"`
	RawLength     int    `json:"raw_length"`
	JSONLength    int    `json:"json_length"`
	Digest        string `json:"digest"`
}

func runInspect(inv *invocation) error {
	data, err := inv.readInput()
	if err != nil {
		return err
	}

	info, err := blob.Inspect(data)
	if err != nil {
		return err
	}

	report := inspectReport{
		Format:        info.Format.String(),
		Tag:           string(rune(info.Format)),
		PayloadLength: info.PayloadLength,
		NoiseLength:   info.NoiseLength,
		RawLength:     info.RawLength,
		JSONLength:    info.JSONLength,
		Digest:        info.Digest.String(),
	}

	if inv.options.jsonOutput {
		encoder := json.NewEncoder(inv.stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	fmt.Fprintf(inv.stdout, "format:         %s (tag %q)\n", report.Format, report.Tag)
	fmt.Fprintf(inv.stdout, "payload:        %d base64 chars\n", report.PayloadLength)
	if report.NoiseLength > 0 {
		fmt.Fprintf(inv.stdout, "trailing noise: %d bytes ignored\n", report.NoiseLength)
	}
	fmt.Fprintf(inv.stdout, "raw:            %d bytes\n", report.RawLength)
	fmt.Fprintf(inv.stdout, "json:           %d bytes\n", report.JSONLength)
	_, err = fmt.Fprintf(inv.stdout, "digest:         %s\n", report.Digest)
	return err
}

// validInputFormat reports whether format names a supported input
// syntax.
func validInputFormat(format string) bool {
	switch format {
	case config.InputJSON, config.InputJSONC, config.InputYAML:
		return true
	}
	return false
}

// validOutputFormat reports whether format names a supported output
// syntax.
func validOutputFormat(format string) bool {
	return format == config.OutputJSON || format == config.OutputYAML
}
