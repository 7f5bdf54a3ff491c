// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema
// definition and formats CUE errors with JSON-path prefixes.
//
//	//go:embed config_schema.cue
//	var schema string
//
//	value, err := cueutil.Validate(schema, "#Config", data, "config.cue")
//	if err != nil {
//	    return err // "config.cue: ui.color: ..."
//	}
package cueutil
