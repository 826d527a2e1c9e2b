// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package asvsgen

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/asvs-tools/asvsgen/pkg/errors"
	"github.com/asvs-tools/asvsgen/pkg/testutils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rootCmd() *cobra.Command {
	cmd := RootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd
}

func createWorkspaceDir(t *testing.T) (dir string, cleanup func()) {
	t.Helper()
	dir, err := testutils.TempDir("", "test_asvsgen_*")
	require.NoError(t, err)
	viper.Set("asvsgen_dir", dir)
	return dir, func() { os.RemoveAll(dir) }
}

func createCSVFile(t *testing.T, content []string) (filePath string) {
	t.Helper()
	file, err := testutils.TempFile("", "test_merge_*.csv")
	require.NoError(t, err)
	defer file.Close()
	for _, line := range content {
		_, err := fmt.Fprintln(file, line)
		require.NoError(t, err)
	}
	return file.Name()
}

func assertCmdOutput(t *testing.T, cmd *cobra.Command, output string) {
	t.Helper()
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	err := cmd.Execute()
	assert.Equal(t, output, buf.String())
	require.NoError(t, err)
}

func assertCmdFailed(t *testing.T, cmd *cobra.Command, output string, err error) {
	t.Helper()
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	exErr := cmd.Execute()
	assert.True(t, errors.Contains(exErr, err), "expecting error %v to contain error %v", exErr, err)
	assert.Equal(t, output, buf.String())
}
