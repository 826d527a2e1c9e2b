// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package asvsgen

import (
	"github.com/asvs-tools/asvsgen/cmd/asvsgen/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "asvsgen",
		Short: "Generate a bilingual OWASP ASVS checklist",
		Long: `Asvsgen builds one English/Japanese checklist CSV out of the OWASP ASVS
repository and its Japanese translation. Run without arguments it clones or
updates both repositories, exports each language to CSV and merges the two
files on req_id.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd)
		},
	}
	viper.SetEnvPrefix("")
	rootCmd.PersistentFlags().String("asvsgen-dir", "", "workspace directory, default to current working directory.")
	viper.BindEnv("asvsgen_dir")
	viper.BindPFlag("asvsgen_dir", rootCmd.PersistentFlags().Lookup("asvsgen-dir"))
	rootCmd.PersistentFlags().String("config-file", "", "read config from specified file instead of asvsgen.yaml in the workspace")
	utils.AddLoggerFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newMergeCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
