// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package asvsgen

import (
	"github.com/asvs-tools/asvsgen/cmd/asvsgen/utils"
	"github.com/asvs-tools/asvsgen/pkg/gen"
	"github.com/asvs-tools/asvsgen/pkg/repos"
	"github.com/spf13/cobra"
)

// runPipeline is the no-argument entry point: sync both repos, export both
// languages and merge the results.
func runPipeline(cmd *cobra.Command) error {
	cleanup, err := utils.SetupLogger(cmd)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}
	logger := utils.GetLogger(cmd)
	ws, err := utils.GetWorkspace(cmd)
	if err != nil {
		return err
	}
	c, err := utils.OpenConfig(cmd, ws)
	if err != nil {
		return err
	}

	cmd.Println("[1/3] preparing repositories")
	f := &repos.Fetcher{Workspace: ws, Logger: *logger, Err: cmd.ErrOrStderr()}
	if err := f.Prepare(c); err != nil {
		return err
	}

	cmd.Println("[2/3] generating csv exports")
	g := &gen.Generator{Workspace: ws, Config: c, Logger: *logger, Err: cmd.ErrOrStderr()}
	if err := g.English(); err != nil {
		return err
	}
	if generated, err := g.Japanese(); err != nil {
		return err
	} else if !generated {
		cmd.Println("japanese export unavailable, continuing with english only")
	}

	cmd.Println("[3/3] merging csv files")
	return mergeStep(cmd, ws, c, ws.EnglishCSV(c), ws.JapaneseCSV(c), ws.MergedCSV(c), false)
}
