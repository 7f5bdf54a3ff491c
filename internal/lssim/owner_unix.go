// SPDX-License-Identifier: MPL-2.0

//go:build unix

package lssim

import (
	"os"
	"os/user"
	"strconv"
	"syscall"
)

// ownerOf resolves the owner and group names of info, falling back to the
// numeric ids when the name lookup fails.
func ownerOf(info os.FileInfo) (owner, group string) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return unknownOwner, unknownOwner
	}

	owner = strconv.FormatUint(uint64(st.Uid), 10)
	if u, err := user.LookupId(owner); err == nil {
		owner = u.Username
	}

	group = strconv.FormatUint(uint64(st.Gid), 10)
	if g, err := user.LookupGroupId(group); err == nil {
		group = g.Name
	}

	return owner, group
}
