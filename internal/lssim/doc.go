// SPDX-License-Identifier: MPL-2.0

// Package lssim implements a directory lister modelled on a small subset of ls.
//
// Supported short options (combinable, e.g. -la):
//
//	-a  show hidden entries and the synthetic . and .. entries
//	-A  show hidden entries only
//	-d  list the named paths themselves, not directory contents
//	-F  append a type indicator (/ * @)
//	-l  long listing format
//	-r  reverse the final order
//	-S  sort by size, largest first
//	-t  sort by modification time, newest first
//
// All per-invocation state lives in Config; the package keeps no globals.
package lssim
