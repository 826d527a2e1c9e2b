// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package gen

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/asvs-tools/asvsgen/pkg/conf"
	"github.com/asvs-tools/asvsgen/pkg/errors"
	"github.com/asvs-tools/asvsgen/pkg/local"
	"github.com/go-logr/logr"
)

// Generator produces the per-language CSV exports by running the export tool
// that ships inside the English ASVS repo, with its stdout redirected to the
// target file.
type Generator struct {
	Workspace *local.Workspace
	Config    *conf.Config
	Logger    logr.Logger

	// Run executes an external command. Defaults to (*exec.Cmd).Run, tests
	// swap in a fake.
	Run func(c *exec.Cmd) error

	// Err receives the tool's stderr.
	Err io.Writer

	// Python overrides the interpreter, default "python3".
	Python string
}

func (g *Generator) python() string {
	if g.Python != "" {
		return g.Python
	}
	return "python3"
}

func (g *Generator) run(c *exec.Cmd) error {
	c.Stderr = g.Err
	if g.Run != nil {
		return g.Run(c)
	}
	return c.Run()
}

// export runs the script from runDir with stdout redirected to outPath. A
// failed run or an empty result removes the file and reports an error.
func (g *Generator) export(script, runDir, outPath string, extraArgs ...string) error {
	if _, err := g.Workspace.EnsureOutputDir(g.Config); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	args := append([]string{script, "--format", "csv"}, extraArgs...)
	c := exec.Command(g.python(), args...)
	c.Dir = runDir
	c.Stdout = f
	g.Logger.Info("running export tool", "args", c.Args, "dir", runDir, "output", outPath)
	runErr := g.run(c)
	if err := f.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		os.Remove(outPath)
		return errors.Wrapf(runErr, "generating %s", outPath)
	}
	if fi, err := os.Stat(outPath); err != nil || fi.Size() == 0 {
		os.Remove(outPath)
		return fmt.Errorf("export tool produced no output at %s", outPath)
	}
	return nil
}

// English generates the English CSV. Any failure here is fatal since the
// merge cannot proceed without its primary dataset.
func (g *Generator) English() error {
	c := g.Config
	runDir := filepath.Join(g.Workspace.RepoDir(c.GetEnglishRepo()), c.GetVersion())
	if fi, err := os.Stat(runDir); err != nil || !fi.IsDir() {
		return fmt.Errorf("english source directory not found: %s", runDir)
	}
	script := filepath.Join("tools", "export.py")
	if _, err := os.Stat(filepath.Join(runDir, script)); err != nil {
		return fmt.Errorf("export script not found: %s", filepath.Join(runDir, script))
	}
	return g.export(script, runDir, g.Workspace.EnglishCSV(c))
}

// Japanese generates the Japanese CSV. The translation repo may lag behind
// the English one, so every failure is tolerated: a zero-byte placeholder is
// written instead and generated reports false. The merge step then emits an
// English-only checklist.
func (g *Generator) Japanese() (generated bool, err error) {
	c := g.Config
	runDir := filepath.Join(g.Workspace.RepoDir(c.GetJapaneseRepo()), c.GetVersion())
	// the export tool lives in the English repo but runs against the
	// Japanese checkout
	script := filepath.Join(g.Workspace.ExportToolDir(c), "export.py")
	outPath := g.Workspace.JapaneseCSV(c)
	if fi, err := os.Stat(runDir); err != nil || !fi.IsDir() {
		g.Logger.Info("japanese source directory not found, skipping generation", "dir", runDir)
		return false, g.placeholder(outPath)
	}
	if _, err := os.Stat(script); err != nil {
		g.Logger.Info("export script not found, skipping japanese generation", "script", script)
		return false, g.placeholder(outPath)
	}
	if err := g.export(script, runDir, outPath, "--language", "ja"); err != nil {
		g.Logger.Info("japanese generation failed", "error", err.Error())
		return false, g.placeholder(outPath)
	}
	return true, nil
}

func (g *Generator) placeholder(outPath string) error {
	if _, err := g.Workspace.EnsureOutputDir(g.Config); err != nil {
		return err
	}
	g.Logger.Info("writing empty placeholder", "path", outPath)
	return os.WriteFile(outPath, nil, 0644)
}
