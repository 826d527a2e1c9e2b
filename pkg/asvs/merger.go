// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package asvs

import (
	"github.com/asvs-tools/asvsgen/pkg/conf"
	"github.com/asvs-tools/asvsgen/pkg/dataset"
	"github.com/asvs-tools/asvsgen/pkg/merge"
	"github.com/asvs-tools/asvsgen/pkg/pbar"
	"github.com/go-logr/logr"
)

const (
	SuffixEnglish  = "_en"
	SuffixJapanese = "_ja"
)

// Merger joins the per-language export CSVs into the bilingual checklist.
// The English file drives row inclusion and, unless sorting is configured,
// row order.
type Merger struct {
	Config *conf.Config
	Logger logr.Logger
	Bars   *pbar.Container
}

type Summary struct {
	Rows int

	// UnmatchedEnglish counts English rows without a Japanese translation.
	UnmatchedEnglish int

	// DroppedJapanese counts Japanese rows whose req_id is not in the
	// English export. They do not appear in the output.
	DroppedJapanese int

	// UnparseableIDs are key values that did not parse as requirement ids
	// while sorting.
	UnparseableIDs []string
}

// MergeFiles reads both language CSVs, joins them on the configured key and
// writes the merged checklist to outPath. Both input files must exist; a
// zero-byte Japanese file (the placeholder the generate step leaves behind
// when the translation is unavailable) merges to an all-unmatched checklist.
func (m *Merger) MergeFiles(enPath, jaPath, outPath string) (*Summary, error) {
	c := m.Config
	if c == nil {
		c = &conf.Config{}
	}
	key := c.GetMergeKey()

	en, err := dataset.ReadFile(enPath)
	if err != nil {
		return nil, err
	}
	ja, err := dataset.ReadFile(jaPath)
	if err != nil {
		return nil, err
	}
	m.Logger.Info("loaded csv files",
		"english", enPath, "englishRows", len(en.Rows),
		"japanese", jaPath, "japaneseRows", len(ja.Rows),
	)

	en.RenameColumns(RenameMap("en"))
	ja.RenameColumns(RenameMap("ja"))
	// the exports share language-independent metadata columns (chapter_id,
	// levels, cwe, nist). Keep the English copy of those and take only the
	// key and the columns unique to the Japanese side.
	keep := []string{key}
	for _, name := range ja.Columns {
		if name == key {
			continue
		}
		if _, ok := en.ColIndex(name); !ok {
			keep = append(keep, name)
		}
	}
	ja = ja.Project(keep...)

	var bar pbar.Bar
	if m.Bars != nil {
		bar = m.Bars.NewBar(int64(len(en.Rows)), "merging rows")
	}
	res, err := merge.Merge(en, ja, merge.Options{
		Key:             key,
		PrimarySuffix:   SuffixEnglish,
		SecondarySuffix: SuffixJapanese,
		Unmatched:       c.GetUnmatchedPolicy(),
		Bar:             bar,
	})
	if err != nil {
		return nil, err
	}
	sum := &Summary{
		Rows:             len(res.Dataset.Rows),
		UnmatchedEnglish: res.UnmatchedPrimary,
		DroppedJapanese:  res.DroppedSecondary,
	}
	if sum.UnmatchedEnglish > 0 {
		m.Logger.Info("english requirements without translation", "count", sum.UnmatchedEnglish, "policy", c.GetUnmatchedPolicy())
	}
	if sum.DroppedJapanese > 0 {
		m.Logger.Info("japanese rows dropped (req_id not in english export)", "count", sum.DroppedJapanese)
	}

	if c.GetSortRows() {
		sum.UnparseableIDs = SortRows(res.Dataset, key)
		for _, v := range sum.UnparseableIDs {
			m.Logger.Info("could not parse req_id for sorting", "value", v)
		}
	}

	out := res.Dataset
	// the canonical checklist shape only makes sense for actual ASVS
	// exports. Arbitrary csv pairs keep the plain union of their columns.
	if IsChecklist(out) {
		out = Reorder(out)
	}
	if err := dataset.WriteFile(outPath, out, c.GetOutputBOM()); err != nil {
		return nil, err
	}
	m.Logger.Info("merged csv written", "path", outPath, "rows", sum.Rows)
	return sum, nil
}
