// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers shared by catls tests.
package testutil
