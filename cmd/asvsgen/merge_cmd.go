// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package asvsgen

import (
	"github.com/asvs-tools/asvsgen/cmd/asvsgen/utils"
	"github.com/asvs-tools/asvsgen/pkg/asvs"
	"github.com/asvs-tools/asvsgen/pkg/conf"
	"github.com/asvs-tools/asvsgen/pkg/local"
	"github.com/asvs-tools/asvsgen/pkg/pbar"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [EN_CSV JA_CSV]",
		Short: "Merge the english and japanese CSV exports into one file",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "merge the generated exports",
				Line:    "asvsgen merge",
			},
			{
				Comment: "merge two arbitrary csv files on req_id",
				Line:    "asvsgen merge english.csv japanese.csv --output combined.csv",
			},
			{
				Comment: "drop english rows that have no translation",
				Line:    "asvsgen merge --unmatched skip",
			},
		}),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return nil
		},
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
			if err := applyMergeFlags(cmd, c); err != nil {
				return err
			}
			enPath, jaPath := ws.EnglishCSV(c), ws.JapaneseCSV(c)
			if len(args) == 2 {
				enPath, jaPath = args[0], args[1]
			}
			outPath, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = ws.MergedCSV(c)
				if _, err := ws.EnsureOutputDir(c); err != nil {
					return err
				}
			}
			quiet, err := cmd.Flags().GetBool("quiet")
			if err != nil {
				return err
			}
			return mergeStep(cmd, ws, c, enPath, jaPath, outPath, quiet)
		},
	}
	cmd.Flags().String("output", "", "output file path. Defaults to the merged csv path under the output dir.")
	cmd.Flags().String("key", "", "join column. Defaults to req_id.")
	cmd.Flags().String("unmatched", "", `what to do with english rows that have no japanese counterpart, either "emit" (default) or "skip"`)
	cmd.Flags().Bool("sort", false, "order merged rows by numeric req_id instead of english file order")
	cmd.Flags().Bool("bom", false, "prefix the output with a UTF-8 byte order mark")
	cmd.Flags().Bool("quiet", false, "don't display progress bar")
	return cmd
}

// applyMergeFlags overlays command line flags on top of the workspace config.
func applyMergeFlags(cmd *cobra.Command, c *conf.Config) error {
	flags := cmd.Flags()
	ensureMerge := func() {
		if c.Merge == nil {
			c.Merge = &conf.Merge{}
		}
	}
	if flags.Changed("key") {
		key, err := flags.GetString("key")
		if err != nil {
			return err
		}
		ensureMerge()
		c.Merge.Key = key
	}
	if flags.Changed("unmatched") {
		s, err := flags.GetString("unmatched")
		if err != nil {
			return err
		}
		policy, err := conf.ParseUnmatchedPolicy(s)
		if err != nil {
			return err
		}
		ensureMerge()
		c.Merge.Unmatched = policy
	}
	if flags.Changed("sort") {
		v, err := flags.GetBool("sort")
		if err != nil {
			return err
		}
		ensureMerge()
		c.Merge.SortRows = &v
	}
	if flags.Changed("bom") {
		v, err := flags.GetBool("bom")
		if err != nil {
			return err
		}
		if c.Output == nil {
			c.Output = &conf.Output{}
		}
		c.Output.BOM = &v
	}
	return nil
}

func mergeStep(cmd *cobra.Command, ws *local.Workspace, c *conf.Config, enPath, jaPath, outPath string, quiet bool) error {
	bars := pbar.NewContainer(cmd.ErrOrStderr(), quiet)
	defer bars.Wait()
	m := &asvs.Merger{
		Config: c,
		Logger: *utils.GetLogger(cmd),
		Bars:   bars,
	}
	sum, err := m.MergeFiles(enPath, jaPath, outPath)
	if err != nil {
		return err
	}
	cmd.Printf("merged %d rows into %s\n", sum.Rows, outPath)
	warn := color.New(color.FgYellow)
	if sum.UnmatchedEnglish > 0 {
		warn.Fprintf(cmd.OutOrStdout(), "%d english requirements have no translation\n", sum.UnmatchedEnglish)
	}
	if sum.DroppedJapanese > 0 {
		warn.Fprintf(cmd.OutOrStdout(), "%d japanese rows have no english counterpart and were dropped\n", sum.DroppedJapanese)
	}
	return nil
}
