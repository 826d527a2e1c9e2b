// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package asvsgen

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/asvs-tools/asvsgen/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCmd(t *testing.T) {
	dir, cleanup := createWorkspaceDir(t)
	defer cleanup()
	enPath := createCSVFile(t, []string{
		"req_id,req",
		"1.1.1,Verify X",
	})
	defer os.Remove(enPath)
	jaPath := createCSVFile(t, []string{
		"req_id,req_ja",
		"1.1.1,Xを検証する",
	})
	defer os.Remove(jaPath)
	outPath := filepath.Join(dir, "merged.csv")

	cmd := rootCmd()
	cmd.SetArgs([]string{"merge", enPath, jaPath, "--output", outPath, "--quiet"})
	assertCmdOutput(t, cmd, fmt.Sprintf("merged 1 rows into %s\n", outPath))

	ds, err := dataset.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"req_id", "req", "req_ja"}, ds.Columns)
	assert.Equal(t, [][]string{{"1.1.1", "Verify X", "Xを検証する"}}, ds.Rows)
}

func TestMergeCmdUnmatched(t *testing.T) {
	dir, cleanup := createWorkspaceDir(t)
	defer cleanup()
	enPath := createCSVFile(t, []string{
		"req_id,req",
		"1.1.1,Verify X",
		"2.2.2,Verify Y",
	})
	defer os.Remove(enPath)
	jaPath := createCSVFile(t, []string{
		"req_id,req_ja",
		"1.1.1,Xを検証する",
	})
	defer os.Remove(jaPath)
	outPath := filepath.Join(dir, "merged.csv")

	cmd := rootCmd()
	cmd.SetArgs([]string{"merge", enPath, jaPath, "--output", outPath, "--quiet"})
	assertCmdOutput(t, cmd, fmt.Sprintf(
		"merged 2 rows into %s\n1 english requirements have no translation\n", outPath,
	))

	ds, err := dataset.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"1.1.1", "Verify X", "Xを検証する"},
		{"2.2.2", "Verify Y", ""},
	}, ds.Rows)
}

func TestMergeCmdUnmatchedSkip(t *testing.T) {
	dir, cleanup := createWorkspaceDir(t)
	defer cleanup()
	enPath := createCSVFile(t, []string{
		"req_id,req",
		"1.1.1,Verify X",
		"2.2.2,Verify Y",
	})
	defer os.Remove(enPath)
	jaPath := createCSVFile(t, []string{
		"req_id,req_ja",
		"1.1.1,Xを検証する",
	})
	defer os.Remove(jaPath)
	outPath := filepath.Join(dir, "merged.csv")

	cmd := rootCmd()
	cmd.SetArgs([]string{"merge", enPath, jaPath, "--output", outPath, "--unmatched", "skip", "--quiet"})
	require.NoError(t, cmd.Execute())

	ds, err := dataset.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1.1.1", "Verify X", "Xを検証する"}}, ds.Rows)
}

func TestMergeCmdDuplicateKey(t *testing.T) {
	_, cleanup := createWorkspaceDir(t)
	defer cleanup()
	enPath := createCSVFile(t, []string{
		"req_id,req",
		"1.1.1,Verify X",
		"1.1.1,Verify X again",
	})
	defer os.Remove(enPath)
	jaPath := createCSVFile(t, []string{
		"req_id,req_ja",
		"1.1.1,Xを検証する",
	})
	defer os.Remove(jaPath)

	cmd := rootCmd()
	cmd.SetArgs([]string{"merge", enPath, jaPath, "--quiet"})
	assertCmdFailed(t, cmd, "", &dataset.DuplicateKeyError{
		Path:   enPath,
		Column: "req_id",
		Value:  "1.1.1",
	})
}

func TestMergeCmdMissingFile(t *testing.T) {
	dir, cleanup := createWorkspaceDir(t)
	defer cleanup()
	jaPath := createCSVFile(t, []string{"req_id,req_ja", "1.1.1,あ"})
	defer os.Remove(jaPath)
	enPath := filepath.Join(dir, "nope.csv")

	cmd := rootCmd()
	cmd.SetArgs([]string{"merge", enPath, jaPath, "--quiet"})
	assertCmdFailed(t, cmd, "", &dataset.MissingFileError{Path: enPath})
}

func TestMergeCmdMalformedRow(t *testing.T) {
	_, cleanup := createWorkspaceDir(t)
	defer cleanup()
	enPath := createCSVFile(t, []string{
		"req_id,req",
		"1.1.1,Verify X,extra",
	})
	defer os.Remove(enPath)
	jaPath := createCSVFile(t, []string{"req_id,req_ja", "1.1.1,あ"})
	defer os.Remove(jaPath)

	cmd := rootCmd()
	cmd.SetArgs([]string{"merge", enPath, jaPath, "--quiet"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestMergeCmdDefaultPaths(t *testing.T) {
	dir, cleanup := createWorkspaceDir(t)
	defer cleanup()
	outputDir := filepath.Join(dir, "output")
	require.NoError(t, os.MkdirAll(outputDir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(outputDir, "asvs_5.0_en.csv"),
		[]byte("req_id,req_description\nV1.1.1,Verify X\n"), 0644,
	))
	require.NoError(t, os.WriteFile(
		filepath.Join(outputDir, "asvs_5.0_ja.csv"),
		[]byte("req_id,req_description\nV1.1.1,Xを検証する\n"), 0644,
	))

	cmd := rootCmd()
	cmd.SetArgs([]string{"merge", "--quiet"})
	require.NoError(t, cmd.Execute())

	ds, err := dataset.ReadFile(filepath.Join(outputDir, "asvs_5.0_merged.csv"))
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	j, ok := ds.ColIndex("req_description_ja")
	require.True(t, ok)
	assert.Equal(t, "Xを検証する", ds.Rows[0][j])
}
