// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package local

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/asvs-tools/asvsgen/pkg/conf"
)

// Workspace is the directory everything happens under: upstream repos are
// checked out in it and generated CSVs land in its output dir.
type Workspace struct {
	FullPath string
}

func NewWorkspace(dir string) (*Workspace, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &Workspace{FullPath: abs}, nil
}

func (ws *Workspace) RepoDir(r conf.Repo) string {
	return filepath.Join(ws.FullPath, r.Dir)
}

// ExportToolDir is where the upstream export script lives. The tool ships
// inside the English repo regardless of which language is exported.
func (ws *Workspace) ExportToolDir(c *conf.Config) string {
	return filepath.Join(ws.RepoDir(c.GetEnglishRepo()), c.GetVersion(), "tools")
}

func (ws *Workspace) OutputDir(c *conf.Config) string {
	return filepath.Join(ws.FullPath, c.GetOutputDir())
}

// EnsureOutputDir creates the output directory if needed and returns its path.
func (ws *Workspace) EnsureOutputDir(c *conf.Config) (string, error) {
	dir := ws.OutputDir(c)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func (ws *Workspace) csvPath(c *conf.Config, suffix string) string {
	return filepath.Join(ws.OutputDir(c), fmt.Sprintf("asvs_%s_%s.csv", c.GetVersion(), suffix))
}

func (ws *Workspace) EnglishCSV(c *conf.Config) string {
	return ws.csvPath(c, "en")
}

func (ws *Workspace) JapaneseCSV(c *conf.Config) string {
	return ws.csvPath(c, "ja")
}

func (ws *Workspace) MergedCSV(c *conf.Config) string {
	return ws.csvPath(c, "merged")
}
