// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package local

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/asvs-tools/asvsgen/pkg/conf"
	"github.com/asvs-tools/asvsgen/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspacePaths(t *testing.T) {
	dir, err := testutils.TempDir("", "test_local_*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	ws, err := NewWorkspace(dir)
	require.NoError(t, err)
	c := &conf.Config{}

	assert.Equal(t, filepath.Join(ws.FullPath, "ASVS"), ws.RepoDir(c.GetEnglishRepo()))
	assert.Equal(t, filepath.Join(ws.FullPath, "ASVS", "5.0", "tools"), ws.ExportToolDir(c))
	assert.Equal(t, filepath.Join(ws.FullPath, "output", "asvs_5.0_en.csv"), ws.EnglishCSV(c))
	assert.Equal(t, filepath.Join(ws.FullPath, "output", "asvs_5.0_ja.csv"), ws.JapaneseCSV(c))
	assert.Equal(t, filepath.Join(ws.FullPath, "output", "asvs_5.0_merged.csv"), ws.MergedCSV(c))
}

func TestWorkspaceDefaultsToCwd(t *testing.T) {
	dir, cleanup := testutils.ChTempDir(t)
	defer cleanup()

	ws, err := NewWorkspace("")
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(ws.FullPath)
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnsureOutputDir(t *testing.T) {
	dir, err := testutils.TempDir("", "test_local_*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	ws, err := NewWorkspace(dir)
	require.NoError(t, err)
	c := &conf.Config{Output: &conf.Output{Dir: "exports"}}
	out, err := ws.EnsureOutputDir(c)
	require.NoError(t, err)
	fi, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}
