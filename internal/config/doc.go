// SPDX-License-Identifier: MPL-2.0

// Package config handles catls configuration using Viper with CUE as the file format.
//
// Configuration is loaded from the file named by --config, else from
// $XDG_CONFIG_HOME/catls/config.cue (~/Library/Application Support/catls on
// macOS, %APPDATA%\catls on Windows), else from ./config.cue. Missing files
// fall back to defaults. Every key may be overridden through the environment
// with the CATLS_ prefix, for example CATLS_LS_TIME_FORMAT.
//
// Files are validated against the embedded config_schema.cue before they are
// merged, and the merged result is validated again so environment overrides
// obey the same rules.
package config
