// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// catls configuration file\n")
	sb.WriteString("// Environment variables with the CATLS_ prefix override these values.\n\n")

	sb.WriteString("ui: {\n")
	fmt.Fprintf(&sb, "\tcolor:   %q\n", cfg.UI.Color)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	sb.WriteString("\nlog: {\n")
	fmt.Fprintf(&sb, "\tlevel: %q\n", cfg.Log.Level)
	sb.WriteString("}\n")

	sb.WriteString("\ncat: {\n")
	fmt.Fprintf(&sb, "\tparallel_sort_threshold: %d\n", cfg.Cat.ParallelSortThreshold)
	sb.WriteString("}\n")

	sb.WriteString("\nls: {\n")
	fmt.Fprintf(&sb, "\ttime_format: %q\n", cfg.Ls.TimeFormat)
	sb.WriteString("}\n")

	return sb.String()
}

// Dump renders cfg in the requested format.
func Dump(cfg *Config, format DumpFormat) ([]byte, error) {
	if ok, errs := format.IsValid(); !ok {
		return nil, errs[0]
	}

	switch format {
	case DumpFormatTOML:
		out, err := toml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to encode config as toml: %w", err)
		}
		return out, nil
	case DumpFormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode config as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode config as yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return []byte(GenerateCUE(cfg)), nil
	}
}
