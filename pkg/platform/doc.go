// SPDX-License-Identifier: MPL-2.0

// Package platform names the operating systems catls distinguishes when it
// resolves per-user directories and executable names.
package platform
