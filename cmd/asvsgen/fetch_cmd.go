// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package asvsgen

import (
	"github.com/asvs-tools/asvsgen/cmd/asvsgen/utils"
	"github.com/asvs-tools/asvsgen/pkg/repos"
	"github.com/spf13/cobra"
)

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Clone or update the upstream ASVS repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := utils.SetupLogger(cmd)
			if err != nil {
				return err
			}
			if cleanup != nil {
				defer cleanup()
			}
			ws, err := utils.GetWorkspace(cmd)
			if err != nil {
				return err
			}
			c, err := utils.OpenConfig(cmd, ws)
			if err != nil {
				return err
			}
			f := &repos.Fetcher{
				Workspace: ws,
				Logger:    *utils.GetLogger(cmd),
				Err:       cmd.ErrOrStderr(),
			}
			if err := f.Prepare(c); err != nil {
				return err
			}
			cmd.Println("repositories are ready")
			return nil
		},
	}
	return cmd
}
