// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package repos

import (
	"io"
	"os"
	"os/exec"

	"github.com/asvs-tools/asvsgen/pkg/conf"
	"github.com/asvs-tools/asvsgen/pkg/errors"
	"github.com/asvs-tools/asvsgen/pkg/local"
	"github.com/go-logr/logr"
)

// Fetcher clones or updates the upstream ASVS repositories.
type Fetcher struct {
	Workspace *local.Workspace
	Logger    logr.Logger

	// Run executes an external command. Defaults to (*exec.Cmd).Run, tests
	// swap in a fake.
	Run func(c *exec.Cmd) error

	// Err receives git's stderr.
	Err io.Writer
}

func (f *Fetcher) run(c *exec.Cmd) error {
	c.Stderr = f.Err
	if f.Run != nil {
		return f.Run(c)
	}
	return c.Run()
}

// CloneOrUpdate makes sure the repo is checked out under the workspace. An
// existing checkout is updated with git pull; pull failures are logged and
// tolerated since a stale checkout is still usable. A fresh shallow clone
// failing is fatal.
func (f *Fetcher) CloneOrUpdate(r conf.Repo) error {
	dir := f.Workspace.RepoDir(r)
	if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
		f.Logger.Info("updating repository", "dir", dir)
		c := exec.Command("git", "pull")
		c.Dir = dir
		if err := f.run(c); err != nil {
			f.Logger.Info("git pull failed, continuing with existing checkout", "dir", dir, "error", err.Error())
		}
		return nil
	}
	f.Logger.Info("cloning repository", "url", r.URL, "dir", dir)
	c := exec.Command("git", "clone", "--depth", "1", r.URL, dir)
	if err := f.run(c); err != nil {
		return errors.Wrapf(err, "cloning %q", r.URL)
	}
	return nil
}

// Prepare syncs both upstream repositories.
func (f *Fetcher) Prepare(c *conf.Config) error {
	if err := f.CloneOrUpdate(c.GetEnglishRepo()); err != nil {
		return err
	}
	return f.CloneOrUpdate(c.GetJapaneseRepo())
}
