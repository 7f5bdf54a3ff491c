// SPDX-License-Identifier: MPL-2.0

// Command catls provides the cat and ls utilities, a virtual shell that runs
// them in-process, and their manual pages.
package main

import cmd "github.com/invowk/catls/cmd/catls"

func main() {
	cmd.Execute()
}
