// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package asvsgen

import (
	"github.com/asvs-tools/asvsgen/cmd/asvsgen/utils"
	"github.com/asvs-tools/asvsgen/pkg/dataset"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [CSV_FILE]",
		Short: "Print a CSV file as an aligned table",
		Long:  "Print a CSV file as an aligned table. Without an argument it previews the merged checklist. Column widths account for double-width Japanese characters.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := utils.GetWorkspace(cmd)
			if err != nil {
				return err
			}
			fp := ""
			if len(args) > 0 {
				fp = args[0]
			} else {
				c, err := utils.OpenConfig(cmd, ws)
				if err != nil {
					return err
				}
				fp = ws.MergedCSV(c)
			}
			maxRows, err := cmd.Flags().GetInt("max-rows")
			if err != nil {
				return err
			}
			columns, err := cmd.Flags().GetStringSlice("columns")
			if err != nil {
				return err
			}
			ds, err := dataset.ReadFile(fp)
			if err != nil {
				return err
			}
			if len(columns) > 0 {
				ds = ds.Project(columns...)
			}
			rows := append([][]string{ds.Columns}, ds.Rows...)
			if maxRows > 0 && len(ds.Rows) > maxRows {
				rows = rows[:maxRows+1]
			}
			utils.PrintTable(cmd.OutOrStdout(), rows, 0)
			if maxRows > 0 && len(ds.Rows) > maxRows {
				cmd.Printf("(%d more rows)\n", len(ds.Rows)-maxRows)
			}
			return nil
		},
	}
	cmd.Flags().Int("max-rows", 0, "maximum number of rows to print. 0 means no limit.")
	cmd.Flags().StringSlice("columns", nil, "only print the named columns")
	return cmd
}
