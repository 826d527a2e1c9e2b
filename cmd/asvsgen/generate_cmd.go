// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package asvsgen

import (
	"fmt"

	"github.com/asvs-tools/asvsgen/cmd/asvsgen/utils"
	"github.com/asvs-tools/asvsgen/pkg/gen"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Export the ASVS documents to per-language CSV files",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "export both languages",
				Line:    "asvsgen generate",
			},
			{
				Comment: "export english only",
				Line:    "asvsgen generate --lang en",
			},
		}),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := cmd.Flags().GetString("lang")
			if err != nil {
				return err
			}
			if lang != "en" && lang != "ja" && lang != "all" {
				return fmt.Errorf("invalid language %q (valid options are \"en\", \"ja\" and \"all\")", lang)
			}
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
			g := &gen.Generator{
				Workspace: ws,
				Config:    c,
				Logger:    *utils.GetLogger(cmd),
				Err:       cmd.ErrOrStderr(),
			}
			if lang == "en" || lang == "all" {
				if err := g.English(); err != nil {
					return err
				}
				cmd.Printf("english csv written to %s\n", ws.EnglishCSV(c))
			}
			if lang == "ja" || lang == "all" {
				generated, err := g.Japanese()
				if err != nil {
					return err
				}
				if generated {
					cmd.Printf("japanese csv written to %s\n", ws.JapaneseCSV(c))
				} else {
					cmd.Printf("japanese export unavailable, empty placeholder written to %s\n", ws.JapaneseCSV(c))
				}
			}
			return nil
		},
	}
	cmd.Flags().String("lang", "all", `language to export, either "en", "ja" or "all"`)
	return cmd
}
