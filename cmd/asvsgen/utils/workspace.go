// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"github.com/asvs-tools/asvsgen/pkg/conf"
	conffs "github.com/asvs-tools/asvsgen/pkg/conf/fs"
	"github.com/asvs-tools/asvsgen/pkg/local"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GetWorkspace resolves the workspace dir from --asvsgen-dir / ASVSGEN_DIR,
// defaulting to the current working directory.
func GetWorkspace(cmd *cobra.Command) (*local.Workspace, error) {
	return local.NewWorkspace(viper.GetString("asvsgen_dir"))
}

// OpenConfig reads the workspace config file, honoring --config-file.
func OpenConfig(cmd *cobra.Command, ws *local.Workspace) (*conf.Config, error) {
	fp, err := cmd.Flags().GetString("config-file")
	if err != nil {
		return nil, err
	}
	return conffs.NewStore(ws.FullPath, fp).Open()
}
