// SPDX-License-Identifier: MPL-2.0

//go:build !linux

package catsim

import (
	"errors"

	"github.com/spf13/afero"
)

var errFlockUnavailable = errors.New("flock not available on this platform")

func lockOutput(afero.File) (func(), error) {
	return nil, errFlockUnavailable
}
