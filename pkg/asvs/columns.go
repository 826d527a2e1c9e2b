// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package asvs

import (
	"github.com/asvs-tools/asvsgen/pkg/dataset"
)

// translatedColumns are the columns the upstream export tool emits in the
// document language. They get a language suffix before the merge so that both
// languages survive side by side.
var translatedColumns = []string{
	"chapter_name",
	"section_name",
	"req_description",
}

// FinalColumns is the column order of the merged checklist.
var FinalColumns = []string{
	"req_id",
	"chapter_id",
	"chapter_name_ja",
	"chapter_name_en",
	"section_id",
	"section_name_ja",
	"section_name_en",
	"req_description_ja",
	"req_description_en",
	"level1",
	"level2",
	"level3",
	"cwe",
	"nist",
}

// RenameMap maps translated column names to their language-suffixed form,
// e.g. req_description -> req_description_ja.
func RenameMap(lang string) map[string]string {
	m := make(map[string]string, len(translatedColumns))
	for _, name := range translatedColumns {
		m[name] = name + "_" + lang
	}
	return m
}

// IsChecklist reports whether ds looks like a merged ASVS export, i.e. it
// carries a requirement id and the English requirement text.
func IsChecklist(ds *dataset.Dataset) bool {
	if _, ok := ds.ColIndex("req_id"); !ok {
		return false
	}
	_, ok := ds.ColIndex("req_description" + SuffixEnglish)
	return ok
}

// Reorder rearranges columns into FinalColumns order. Final columns missing
// from ds are added with empty values so the checklist shape is stable even
// when one language is absent. Columns outside FinalColumns are kept,
// trailing in their existing order, so a merge never loses data.
func Reorder(ds *dataset.Dataset) *dataset.Dataset {
	known := map[string]bool{}
	for _, name := range FinalColumns {
		known[name] = true
	}
	columns := append([]string{}, FinalColumns...)
	for _, name := range ds.Columns {
		if !known[name] {
			columns = append(columns, name)
		}
	}
	src := make([]int, len(columns))
	for i, name := range columns {
		if j, ok := ds.ColIndex(name); ok {
			src[i] = j
		} else {
			src[i] = -1
		}
	}
	out := &dataset.Dataset{Path: ds.Path, Columns: columns}
	for _, row := range ds.Rows {
		r := make([]string, len(columns))
		for i, j := range src {
			if j >= 0 {
				r[i] = row[j]
			}
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}
