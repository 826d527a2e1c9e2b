// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package asvsgen

import (
	"testing"
)

func TestVersionCmd(t *testing.T) {
	cmd := rootCmd()
	cmd.SetArgs([]string{"version"})
	assertCmdOutput(t, cmd, "asvsgen v0.1.0\n")
}
